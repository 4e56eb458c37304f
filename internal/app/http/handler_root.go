package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autovendas/whatsapp-bridge/internal/app/usecase"
)

var rootTemplate = template.Must(template.New("root").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="UTF-8">
    {{if .Refresh}}<meta http-equiv="refresh" content="{{.Refresh}}">{{end}}
    <style>
        body { font-family: Arial; text-align: center; padding: 40px; background: #f0f0f0; }
        .container { background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); max-width: 600px; margin: 0 auto; }
        .status { color: #25D366; font-size: 24px; font-weight: bold; }
        .loading { color: #666; font-size: 18px; }
        .qr-code img { border: 2px solid #25D366; border-radius: 10px; padding: 10px; background: white; }
        .instructions { color: #666; margin-top: 20px; line-height: 1.6; text-align: left; max-width: 400px; margin-left: auto; margin-right: auto; }
    </style>
</head>
<body>
    <div class="container">
        <h1>WhatsApp Bridge</h1>
        {{if .Connected}}
        <div class="status">✅ Conectado!</div>
        <p>Seu WhatsApp está conectado e pronto para uso.</p>
        {{else if .QRImage}}
        <p><strong>Escaneie o QR Code com seu WhatsApp</strong></p>
        <div class="qr-code"><img src="{{.QRImage}}" alt="QR Code" width="400" height="400"></div>
        <div class="instructions">
            <p><strong>Como conectar:</strong></p>
            <ol>
                <li>Abra o WhatsApp no seu celular</li>
                <li>Vá em <strong>Configurações &gt; Aparelhos conectados</strong></li>
                <li>Toque em <strong>Conectar um aparelho</strong></li>
                <li>Aponte a câmera para este QR code</li>
            </ol>
        </div>
        {{else}}
        <div class="loading">⏳ Aguardando QR Code...</div>
        <p>A página será atualizada automaticamente.</p>
        {{end}}
    </div>
</body>
</html>
`))

type rootPage struct {
	Title     string
	Refresh   string
	Connected bool
	QRImage   template.URL
}

// Root serves the human pairing page: connected banner, waiting spinner
// with a 3s refresh, or the QR code with a 30s refresh (codes rotate).
func (h *Handler) Root(c *gin.Context) {
	out, err := h.qrUC.Execute(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao gerar QR code")
		return
	}

	page := rootPage{Title: "WhatsApp - Aguardando", Refresh: "3"}
	switch out.Status {
	case usecase.QRStatusConnected:
		page = rootPage{Title: "WhatsApp - Conectado", Connected: true}
	case usecase.QRStatusAvailable:
		page = rootPage{
			Title:   "WhatsApp - Escanear QR Code",
			Refresh: "30",
			QRImage: template.URL(out.Image),
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := rootTemplate.Execute(c.Writer, page); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao gerar página")
	}
}
