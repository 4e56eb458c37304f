package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/autovendas/whatsapp-bridge/internal/domain/bridge"
	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
	"github.com/autovendas/whatsapp-bridge/internal/metrics"
	"github.com/autovendas/whatsapp-bridge/internal/pkg/ratelimit"
)

type SendTextInput struct {
	To      string
	Message string
}

type SendTextOutput struct {
	Status    string
	Detail    string
	To        string
	MessageID string
}

type SendTextUsecase struct {
	gw      SessionGateway
	limiter *ratelimit.PerKey
	metrics *metrics.Metrics
}

func NewSendTextUsecase(gw SessionGateway, limiter *ratelimit.PerKey, m *metrics.Metrics) *SendTextUsecase {
	return &SendTextUsecase{gw: gw, limiter: limiter, metrics: m}
}

func (u *SendTextUsecase) Execute(ctx context.Context, in SendTextInput) (*SendTextOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in.To = strings.TrimSpace(in.To)
	in.Message = strings.TrimSpace(in.Message)
	if in.To == "" {
		return nil, fmt.Errorf("to is required")
	}
	if in.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	if u.gw.Snapshot().State != wa.StateReady {
		u.metrics.Sends.WithLabelValues("not_connected").Inc()
		return nil, bridge.ErrNotConnected
	}

	if u.limiter != nil && !u.limiter.Allow(in.To) {
		u.metrics.Sends.WithLabelValues("rate_limited").Inc()
		return nil, bridge.ErrRateLimited
	}

	recipient, err := u.gw.ResolveRecipient(ctx, in.To)
	if err != nil {
		u.metrics.Sends.WithLabelValues("error").Inc()
		return nil, err
	}

	id, err := u.gw.SendText(ctx, recipient, in.Message)
	if err != nil {
		u.metrics.Sends.WithLabelValues("error").Inc()
		return nil, err
	}

	u.metrics.Sends.WithLabelValues("ok").Inc()
	return &SendTextOutput{
		Status:    "success",
		Detail:    "Mensagem enviada com sucesso",
		To:        in.To,
		MessageID: id,
	}, nil
}
