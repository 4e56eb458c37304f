package relay

import (
	"context"
	"encoding/base64"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/types/events"
)

// Placeholders used when a media message carries no text of its own.
// The backend bot matches on these strings, so they are part of the
// webhook contract.
const (
	AudioPlaceholder = "[Áudio recebido]"
	ImagePlaceholder = "[Imagem recebida]"
)

// Envelope is the JSON body POSTed to the backend webhook for each
// inbound message.
type Envelope struct {
	From          string `json:"from"`
	Body          string `json:"body"`
	Timestamp     int64  `json:"timestamp"`
	HasMedia      bool   `json:"hasMedia"`
	Type          string `json:"type"`
	AudioData     string `json:"audioData,omitempty"`
	AudioMimetype string `json:"audioMimetype,omitempty"`
	ImageData     string `json:"imageData,omitempty"`
	ImageMimetype string `json:"imageMimetype,omitempty"`
}

// Downloader fetches media content for an inbound message. Satisfied by
// wa.Session; faked in tests.
type Downloader interface {
	Download(ctx context.Context, msg whatsmeow.DownloadableMessage) ([]byte, error)
}

// buildEnvelope normalizes one provider event. Media download is attempted
// exactly once with a bounded context; a failed download never drops the
// message, it just goes out without the attachment.
func (r *Relay) buildEnvelope(ctx context.Context, evt *events.Message) Envelope {
	env := Envelope{
		From:      evt.Info.Chat.String(),
		Timestamp: evt.Info.Timestamp.Unix(),
		Type:      "other",
	}

	msg := evt.Message
	switch {
	case msg.GetAudioMessage() != nil:
		audio := msg.GetAudioMessage()
		env.Type = "audio"
		if audio.GetPTT() {
			env.Type = "ptt"
		}
		env.HasMedia = true
		env.Body = AudioPlaceholder

		if data, ok := r.download(ctx, audio); ok {
			env.AudioData = base64.StdEncoding.EncodeToString(data)
			env.AudioMimetype = audio.GetMimetype()
		}

	case msg.GetImageMessage() != nil:
		img := msg.GetImageMessage()
		env.Type = "image"
		env.HasMedia = true
		env.Body = img.GetCaption()
		if env.Body == "" {
			env.Body = ImagePlaceholder
		}

		if data, ok := r.download(ctx, img); ok {
			env.ImageData = base64.StdEncoding.EncodeToString(data)
			env.ImageMimetype = img.GetMimetype()
		}

	case msg.GetConversation() != "":
		env.Type = "text"
		env.Body = msg.GetConversation()

	case msg.GetExtendedTextMessage() != nil:
		env.Type = "text"
		env.Body = msg.GetExtendedTextMessage().GetText()
	}

	return env
}

func (r *Relay) download(ctx context.Context, msg whatsmeow.DownloadableMessage) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.mediaTimeout)
	defer cancel()

	data, err := r.downloader.Download(ctx, msg)
	if err != nil || len(data) == 0 {
		r.log.Warnf("media download failed: %v", err)
		r.metrics.MediaDownloads.WithLabelValues("error").Inc()
		return nil, false
	}

	r.metrics.MediaDownloads.WithLabelValues("ok").Inc()
	return data, true
}
