// internal/handlers/chat/chat.go
package chat

import (
	"net/http"

	"secad-service/internal/pkg/response"
	service "secad-service/internal/service/chat"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask answers one question over the current data snapshot
func (h *ChatHandler) Ask(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "assistant unavailable", err)
		return
	}

	response.Success(c, http.StatusOK, "answer generated", gin.H{"answer": answer})
}

// Refresh drops the cached data snapshot so the next question reads the
// store again.
func (h *ChatHandler) Refresh(c *gin.Context) {
	h.chatService.Invalidate(c.Request.Context())
	response.Success(c, http.StatusOK, "snapshot refreshed", nil)
}

type wsQuestion struct {
	Question string `json:"question"`
}

type wsAnswer struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Session upgrades the connection and answers questions turn by turn. Each
// turn re-reads the snapshot; nothing persists between messages beyond the
// open socket.
func (h *ChatHandler) Session(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			zap.Error(err),
			zap.String("ip", c.ClientIP()),
		)
		return
	}
	defer conn.Close()

	for {
		var q wsQuestion
		if err := conn.ReadJSON(&q); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if q.Question == "" {
			if err := conn.WriteJSON(wsAnswer{Error: "question is required"}); err != nil {
				return
			}
			continue
		}

		answer, err := h.chatService.Ask(c.Request.Context(), q.Question)
		msg := wsAnswer{Answer: answer}
		if err != nil {
			h.logger.Error("chat turn failed", zap.Error(err))
			msg = wsAnswer{Error: "assistant unavailable"}
		}

		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
