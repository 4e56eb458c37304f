package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autovendas/whatsapp-bridge/internal/app/usecase"
)

func (h *Handler) Health(c *gin.Context) {
	out, err := h.statusUC.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao obter status", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		WhatsappReady: out.Ready,
		HasQR:         out.HasQR,
	})
}

func (h *Handler) QR(c *gin.Context) {
	out, err := h.qrUC.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar QR code", "details": err.Error()})
		return
	}

	switch out.Status {
	case usecase.QRStatusConnected:
		c.JSON(http.StatusOK, QRResponse{Status: out.Status, Message: "WhatsApp já está conectado"})
	case usecase.QRStatusWaiting:
		c.JSON(http.StatusOK, QRResponse{Status: out.Status, Message: "Aguardando QR Code..."})
	default:
		c.JSON(http.StatusOK, QRResponse{Status: out.Status, QR: out.Payload, QRImage: out.Image})
	}
}
