package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/booklyhq/support-be/types"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketService exposes the query pipeline over a websocket so the chat
// client can keep one connection open instead of posting per message.
type WebSocketService struct {
	query    *QueryService
	upgrader websocket.Upgrader
}

func NewWebSocketService(query *QueryService) *WebSocketService {
	return &WebSocketService{
		query: query,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(64 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("websocket read error")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketPing:
			conn.WriteJSON(types.WebsocketResponse{
				Type: types.TypeWebsocketPong,
			})
		case types.TypeWebsocketQuery:
			var payload types.QueryRequest
			if err := json.Unmarshal(req.Payload, &payload); err != nil {
				s.writeError(conn, "invalid query payload")
				continue
			}
			result, err := s.query.Process(r.Context(), payload.Query)
			if err != nil {
				log.Error().Err(err).Msg("websocket query failed")
				s.writeError(conn, err.Error())
				continue
			}
			conn.WriteJSON(types.WebsocketResponse{
				Type: types.TypeWebsocketQuery,
				Payload: types.QueryResponse{
					Success:   true,
					Response:  result.Answer,
					ToolsUsed: result.ToolsUsed,
					Intent:    result.Intent,
					Metadata: types.QueryMetadata{
						FoundOrders:    len(result.Orders),
						FoundKnowledge: len(result.Articles),
					},
				},
			})
		default:
			s.writeError(conn, "unknown message type")
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	conn.WriteJSON(types.WebsocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebsocketErrorPayload{Error: message},
	})
}
