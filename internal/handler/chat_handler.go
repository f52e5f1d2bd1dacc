package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/response"
	"github.com/smartaid/smartaid-backend/internal/service"
	"github.com/smartaid/smartaid-backend/internal/validator"
	ws "github.com/smartaid/smartaid-backend/internal/websocket"
)

// ChatHandler exposes the FAQ responder over REST and WebSocket.
type ChatHandler struct {
	faqService *service.FaqService
	log        zerolog.Logger
	upgrader   websocket.Upgrader
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(faqService *service.FaqService, log zerolog.Logger, allowedOrigins []string) *ChatHandler {
	return &ChatHandler{
		faqService: faqService,
		log:        log.With().Str("component", "chat_handler").Logger(),
		upgrader:   buildUpgrader(allowedOrigins),
	}
}

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// Ask godoc
// POST /api/v1/chat
// Returns the best-matching FAQ answer for a free-text question.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req model.ChatRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	answer := h.faqService.Answer(c.Request.Context(), req.Question)
	response.Success(c, http.StatusOK, gin.H{"response": answer})
}

// ChatStream godoc
// WS /ws/v1/chat
// Upgrades to WebSocket and answers questions in a request/response loop.
func (h *ChatHandler) ChatStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	h.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("Chat client connected")

	for {
		var msg ws.AskRequest
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("Unexpected close")
			} else {
				h.log.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			_ = ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
		case ws.ActionAsk:
			if strings.TrimSpace(msg.Question) == "" {
				_ = ws.WriteError(conn, "question is required")
				continue
			}
			answer := h.faqService.Answer(c.Request.Context(), msg.Question)
			if err := ws.WriteTyped(conn, ws.AnswerResponse{Event: ws.EventAnswer, Answer: answer}); err != nil {
				return
			}
		default:
			_ = ws.WriteError(conn, "unknown action")
		}
	}
}
