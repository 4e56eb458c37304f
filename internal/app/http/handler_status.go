package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Status(c *gin.Context) {
	out, err := h.statusUC.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao obter status", "details": err.Error()})
		return
	}

	if !out.Ready {
		c.JSON(http.StatusOK, StatusResponse{
			Connected: false,
			State:     out.State,
			Message:   "WhatsApp não conectado",
		})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Connected: out.Connected,
		State:     out.State,
		Ready:     out.Ready,
	})
}

func (h *Handler) Info(c *gin.Context) {
	out, err := h.infoUC.Execute(c.Request.Context())
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusServiceUnavailable {
			c.JSON(status, gin.H{"error": "WhatsApp não está conectado"})
			return
		}
		c.JSON(status, gin.H{"error": "Erro ao obter informações", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, InfoResponse{
		WID:      out.WID,
		PushName: out.PushName,
		Platform: out.Platform,
	})
}
