package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// QRStream pushes QR/lifecycle changes over SSE so a pairing page does not
// have to poll /qr. Polling callers keep working; this is an extra surface.
func (h *Handler) QRStream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	ctx := c.Request.Context()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	lastStatus := ""
	lastPayload := ""

	// send emits one event when the status or payload changed; an error
	// is reported once and ends the stream.
	send := func() bool {
		out, err := h.qrUC.Execute(ctx)
		if err != nil {
			c.SSEvent("qr", QRResponse{Status: "failed", Message: err.Error()})
			c.Writer.Flush()
			return true
		}

		if out.Status != lastStatus || out.Payload != lastPayload {
			c.SSEvent("qr", QRResponse{Status: out.Status, QR: out.Payload, QRImage: out.Image})
			c.Writer.Flush()
			lastStatus = out.Status
			lastPayload = out.Payload
		}

		return false
	}

	if done := send(); done {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if done := send(); done {
				return
			}
		}
	}
}
