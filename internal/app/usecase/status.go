package usecase

import (
	"context"
	"time"

	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
)

type StatusOutput struct {
	Connected  bool
	State      string
	Ready      bool
	HasQR      bool
	ReadySince time.Time
	LastDetail string
}

type StatusUsecase struct {
	gw SessionGateway
}

func NewStatusUsecase(gw SessionGateway) *StatusUsecase {
	return &StatusUsecase{gw: gw}
}

// Execute reads the lifecycle snapshot plus the live link flag. It never
// blocks on the network.
func (u *StatusUsecase) Execute(ctx context.Context) (*StatusOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := u.gw.Snapshot()
	linkConnected, _ := u.gw.LinkState()

	ready := snap.State == wa.StateReady
	return &StatusOutput{
		Connected:  ready && linkConnected,
		State:      string(snap.State),
		Ready:      ready,
		HasQR:      snap.State == wa.StateQRPending && snap.PairingPayload != "",
		ReadySince: snap.ReadySince,
		LastDetail: snap.LastDisconnectReason,
	}, nil
}
