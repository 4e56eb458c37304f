package usecase

import (
	"context"

	"go.mau.fi/whatsmeow/types"

	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
)

// SessionGateway is the slice of the session manager the gateway
// operations need. Implemented by *wa.Session.
type SessionGateway interface {
	Snapshot() wa.Snapshot
	LinkState() (connected, loggedIn bool)
	ResolveRecipient(ctx context.Context, raw string) (types.JID, error)
	SendText(ctx context.Context, to types.JID, text string) (string, error)
	OwnerInfo() (wa.OwnerInfo, error)
	Logout(ctx context.Context) error
	Restart(ctx context.Context) error
}
