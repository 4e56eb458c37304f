package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autovendas/whatsapp-bridge/internal/app/usecase"
)

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json", "details": err.Error()})
		return
	}

	req.Number = strings.TrimSpace(req.Number)
	req.Message = strings.TrimSpace(req.Message)
	if req.Number == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número e mensagem são obrigatórios"})
		return
	}

	out, err := h.sendUC.Execute(c.Request.Context(), usecase.SendTextInput{
		To:      req.Number,
		Message: req.Message,
	})
	if err != nil {
		status := errorStatus(err)
		switch status {
		case http.StatusServiceUnavailable:
			c.JSON(status, gin.H{"error": "WhatsApp não está conectado"})
		case http.StatusNotFound:
			c.JSON(status, gin.H{
				"error":   "Número não encontrado",
				"details": "Este número não está registrado no WhatsApp",
			})
		default:
			c.JSON(status, gin.H{"error": "Erro ao enviar mensagem", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, SendResponse{
		Status:    out.Status,
		Message:   out.Detail,
		To:        out.To,
		MessageID: out.MessageID,
	})
}
