package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Logout(c *gin.Context) {
	out, err := h.logoutUC.Execute(c.Request.Context())
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusBadRequest {
			c.JSON(status, gin.H{"error": "Cliente não inicializado"})
			return
		}
		c.JSON(status, gin.H{"error": "Erro ao fazer logout", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LogoutResponse{Status: out.Status, Message: out.Detail})
}

func (h *Handler) Restart(c *gin.Context) {
	out, err := h.restartUC.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao reiniciar sessão", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, RestartResponse{Status: out.Status})
}
