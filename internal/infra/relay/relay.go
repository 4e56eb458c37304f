// Package relay forwards inbound WhatsApp messages to the backend webhook.
//
// Delivery is best-effort, at most once per event: a failed POST is logged
// and counted, never retried or queued for later. If the provider fires
// duplicate events for one message, two envelopes go out; deduplication is
// the backend's concern. Sustained backend unavailability therefore loses
// messages, which is a documented limitation of the bridge, not a bug.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/autovendas/whatsapp-bridge/internal/metrics"
)

const defaultQueueSize = 256

type Config struct {
	WebhookURL     string
	Downloader     Downloader
	Logger         walog.Logger
	Metrics        *metrics.Metrics
	MediaTimeout   time.Duration
	WebhookTimeout time.Duration
	QueueSize      int
}

// Relay consumes inbound events from a single ordered queue so envelopes
// reach the webhook in the order the provider emitted them.
type Relay struct {
	webhookURL   string
	downloader   Downloader
	log          walog.Logger
	metrics      *metrics.Metrics
	mediaTimeout time.Duration
	httpClient   *http.Client
	queue        chan *events.Message
}

func New(cfg Config) *Relay {
	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}

	return &Relay{
		webhookURL:   cfg.WebhookURL,
		downloader:   cfg.Downloader,
		log:          cfg.Logger,
		metrics:      cfg.Metrics,
		mediaTimeout: cfg.MediaTimeout,
		httpClient:   &http.Client{Timeout: cfg.WebhookTimeout},
		queue:        make(chan *events.Message, size),
	}
}

// Enqueue accepts one inbound event. Own outgoing messages are skipped.
// When the queue is full the event is dropped and counted; there is no
// backpressure toward the provider.
func (r *Relay) Enqueue(evt *events.Message) {
	if evt == nil || evt.Info.IsFromMe {
		return
	}

	select {
	case r.queue <- evt:
		r.metrics.QueueLength.Inc()
	default:
		r.log.Errorf("relay queue full, dropping message %s from %s", evt.Info.ID, evt.Info.Chat)
		r.metrics.QueueDropped.Inc()
	}
}

// Run processes the queue until ctx is cancelled. One consumer preserves
// delivery order; the per-item media download and POST each have their own
// bounded timeout so a stalled request cannot wedge the loop forever.
func (r *Relay) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-r.queue:
			r.metrics.QueueLength.Dec()
			r.process(ctx, evt)
		}
	}
}

func (r *Relay) process(ctx context.Context, evt *events.Message) {
	env := r.buildEnvelope(ctx, evt)

	if err := r.deliver(ctx, env); err != nil {
		r.log.Errorf("webhook delivery failed for message from %s: %v", env.From, err)
		r.metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		r.metrics.MessagesRelayed.WithLabelValues("error").Inc()
		return
	}

	r.metrics.WebhookDeliveries.WithLabelValues("ok").Inc()
	r.metrics.MessagesRelayed.WithLabelValues("ok").Inc()
}

func (r *Relay) deliver(ctx context.Context, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}

	return nil
}
