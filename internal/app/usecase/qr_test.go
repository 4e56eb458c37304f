package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
)

func TestQRWhenConnected(t *testing.T) {
	uc := NewQRUsecase(&fakeGateway{snap: wa.Snapshot{State: wa.StateReady}})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != QRStatusConnected {
		t.Errorf("status = %q", out.Status)
	}
	if out.Payload != "" || out.Image != "" {
		t.Error("connected response must not include a stale code")
	}
}

func TestQRWhenWaiting(t *testing.T) {
	for _, state := range []wa.State{wa.StateUninitialized, wa.StateDisconnected, wa.StateAuthFailed, wa.StateAuthenticated} {
		uc := NewQRUsecase(&fakeGateway{snap: wa.Snapshot{State: state}})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("state %s: %v", state, err)
		}
		if out.Status != QRStatusWaiting {
			t.Errorf("state %s: status = %q, want waiting", state, out.Status)
		}
	}
}

func TestQRAvailable(t *testing.T) {
	uc := NewQRUsecase(&fakeGateway{snap: wa.Snapshot{
		State:          wa.StateQRPending,
		PairingPayload: "2@pairing-code",
	}})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != QRStatusAvailable {
		t.Fatalf("status = %q", out.Status)
	}
	if out.Payload != "2@pairing-code" {
		t.Errorf("payload = %q", out.Payload)
	}
	if !strings.HasPrefix(out.Image, "data:image/png;base64,") {
		t.Errorf("image is not a png data url: %.40q", out.Image)
	}
}
