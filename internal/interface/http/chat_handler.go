package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/kisan-advisor/internal/domain/chat"
)

type textRequest struct {
	Text string `json:"text"`
}

// StartConversation opens a conversation seeded with the welcome message.
func (h *Handler) StartConversation(c *gin.Context) {
	conv, err := h.chatSvc.Start(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// ListMessages returns a conversation's history.
func (h *Handler) ListMessages(c *gin.Context) {
	msgs, err := h.chatSvc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// SendMessage runs one chat turn.
func (h *Handler) SendMessage(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, badRequest(err))
		return
	}
	turn, err := h.chatSvc.Send(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, turn)
}

// QuickActions lists the preset prompts.
func (h *Handler) QuickActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"actions": h.chatSvc.QuickActions()})
}

// Respond answers a single message without touching any history.
func (h *Handler) Respond(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, badRequest(err))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		abortWithError(c, badRequest(errors.New("text cannot be empty")))
		return
	}
	intent := chat.Classify(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"intent":   intent,
		"response": chat.ResponseFor(intent),
	})
}
