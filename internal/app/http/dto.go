package http

type SendRequest struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

type SendResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	To        string `json:"to"`
	MessageID string `json:"messageId,omitempty"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	WhatsappReady bool   `json:"whatsapp_ready"`
	HasQR         bool   `json:"has_qr"`
}

type QRResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	QR      string `json:"qr,omitempty"`
	QRImage string `json:"qrImage,omitempty"`
}

type StatusResponse struct {
	Connected bool   `json:"connected"`
	State     string `json:"state,omitempty"`
	Ready     bool   `json:"ready"`
	Message   string `json:"message,omitempty"`
}

type InfoResponse struct {
	WID      string `json:"wid"`
	PushName string `json:"pushname"`
	Platform string `json:"platform"`
}

type LogoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RestartResponse struct {
	Status string `json:"status"`
}
