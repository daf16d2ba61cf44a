package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiService struct {
	apiKey    string
	modelName string

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}, nil
}

// ensureClient initializes the client on first use so a bad key surfaces on
// the request path rather than at startup.
func (s *GeminiService) ensureClient(ctx context.Context) (*genai.GenerativeModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		return s.model, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, err
	}
	s.client = client
	s.model = client.GenerativeModel(s.modelName)
	return s.model, nil
}

func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	model, err := s.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func (s *GeminiService) Name() string {
	return "gemini:" + s.modelName
}
