package usecase

import (
	"context"
	"fmt"

	"github.com/autovendas/whatsapp-bridge/internal/domain/bridge"
	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
	"github.com/autovendas/whatsapp-bridge/internal/qrimage"
)

// QR statuses reported to callers.
const (
	QRStatusConnected = "connected"
	QRStatusWaiting   = "waiting"
	QRStatusAvailable = "qr_available"
)

type QROutput struct {
	Status  string
	Payload string
	Image   string // data URL, only when Status is qr_available
}

type QRUsecase struct {
	gw SessionGateway
}

func NewQRUsecase(gw SessionGateway) *QRUsecase {
	return &QRUsecase{gw: gw}
}

// Execute returns the current pairing payload with its rendered image.
// Once the session has left qr_pending any previously served image is
// stale, so callers get connected/waiting instead of a cached code.
func (u *QRUsecase) Execute(ctx context.Context) (*QROutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := u.gw.Snapshot()

	if snap.State == wa.StateReady {
		return &QROutput{Status: QRStatusConnected}, nil
	}

	if snap.State != wa.StateQRPending || snap.PairingPayload == "" {
		return &QROutput{Status: QRStatusWaiting}, nil
	}

	image, err := qrimage.DataURL(snap.PairingPayload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bridge.ErrRenderFailure, err)
	}

	return &QROutput{
		Status:  QRStatusAvailable,
		Payload: snap.PairingPayload,
		Image:   image,
	}, nil
}
