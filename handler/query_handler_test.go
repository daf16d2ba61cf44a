package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/booklyhq/support-be/service"
	"github.com/booklyhq/support-be/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	processFn  func(ctx context.Context, query string) (*types.QueryResult, error)
	feedbackFn func(ctx context.Context, req types.FeedbackRequest) error
}

func (f *fakeProcessor) Process(ctx context.Context, query string) (*types.QueryResult, error) {
	return f.processFn(ctx, query)
}

func (f *fakeProcessor) Feedback(ctx context.Context, req types.FeedbackRequest) error {
	if f.feedbackFn != nil {
		return f.feedbackFn(ctx, req)
	}
	return nil
}

func queryRouter(p QueryProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewQueryHandler(p)
	router.POST("/api/query", h.HandleQuery)
	router.POST("/api/query/feedback", h.HandleFeedback)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleQuery(t *testing.T) {
	processor := &fakeProcessor{
		processFn: func(ctx context.Context, query string) (*types.QueryResult, error) {
			require.Equal(t, "where is order ORD-1?", query)
			return &types.QueryResult{
				Intent:    "order_status",
				Orders:    []*types.Order{{OrderID: "ORD-1"}},
				Articles:  []*types.KnowledgeArticle{{ID: "kb1"}, {ID: "kb2"}},
				ToolsUsed: []string{"OrderLookup", "KnowledgeSearch", "gemini:test"},
				Answer:    "Your order shipped.",
			}, nil
		},
	}
	router := queryRouter(processor)

	rec := postJSON(t, router, "/api/query", `{"query":"where is order ORD-1?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.QueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Your order shipped.", resp.Response)
	require.Equal(t, "order_status", resp.Intent)
	require.Equal(t, []string{"OrderLookup", "KnowledgeSearch", "gemini:test"}, resp.ToolsUsed)
	require.Equal(t, 1, resp.Metadata.FoundOrders)
	require.Equal(t, 2, resp.Metadata.FoundKnowledge)
}

func TestHandleQueryBadBody(t *testing.T) {
	processor := &fakeProcessor{
		processFn: func(ctx context.Context, query string) (*types.QueryResult, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	router := queryRouter(processor)

	rec := postJSON(t, router, "/api/query", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Query is required", resp.Error)
}

func TestHandleQueryErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", &service.Error{Code: service.ErrorInvalidInput, Reason: "empty_query"}, http.StatusBadRequest},
		{"configuration", &service.Error{Code: service.ErrorConfiguration, Reason: "generation_api_key_not_set"}, http.StatusInternalServerError},
		{"persistence", &service.Error{Code: service.ErrorPersistence, Reason: "order_lookup_error"}, http.StatusInternalServerError},
		{"timeout", &service.Error{Code: service.ErrorTimeout, Reason: "generation_timeout"}, http.StatusGatewayTimeout},
		{"upstream", &service.Error{Code: service.ErrorUpstream, Reason: "generation_error"}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			processor := &fakeProcessor{
				processFn: func(ctx context.Context, query string) (*types.QueryResult, error) {
					return nil, tc.err
				},
			}
			router := queryRouter(processor)

			rec := postJSON(t, router, "/api/query", `{"query":"anything"}`)
			require.Equal(t, tc.wantStatus, rec.Code)

			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.False(t, resp.Success)
			require.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleFeedback(t *testing.T) {
	var got types.FeedbackRequest
	processor := &fakeProcessor{
		processFn: func(ctx context.Context, query string) (*types.QueryResult, error) {
			return nil, nil
		},
		feedbackFn: func(ctx context.Context, req types.FeedbackRequest) error {
			got = req
			return nil
		},
	}
	router := queryRouter(processor)

	rec := postJSON(t, router, "/api/query/feedback", `{"helpful":true,"knowledge_id":"kb1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, got.Helpful)
	require.Equal(t, "kb1", got.KnowledgeID)
}
