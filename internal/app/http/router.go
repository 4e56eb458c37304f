package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
)

func NewRouter(h *Handler, metricsHandler nethttp.Handler) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), gin.Recovery())

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/qr", h.QR)
	r.GET("/qr/stream", h.QRStream)
	r.POST("/send", h.Send)
	r.GET("/status", h.Status)
	r.GET("/info", h.Info)
	r.POST("/logout", h.Logout)
	r.POST("/restart", h.Restart)

	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	return r
}
