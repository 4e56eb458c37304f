package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/autovendas/whatsapp-bridge/internal/domain/bridge"
	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
)

func TestStatusReady(t *testing.T) {
	uc := NewStatusUsecase(&fakeGateway{snap: wa.Snapshot{State: wa.StateReady}})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !out.Connected || !out.Ready || out.State != "ready" {
		t.Errorf("output = %+v", out)
	}
	if out.HasQR {
		t.Error("ready session must not report a pending code")
	}
}

func TestStatusQRPending(t *testing.T) {
	uc := NewStatusUsecase(&fakeGateway{snap: wa.Snapshot{
		State:          wa.StateQRPending,
		PairingPayload: "code",
	}})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Connected || out.Ready {
		t.Errorf("output = %+v", out)
	}
	if !out.HasQR {
		t.Error("qr_pending with payload should report has_qr")
	}
}

func TestStatusDisconnectedCarriesReason(t *testing.T) {
	uc := NewStatusUsecase(&fakeGateway{snap: wa.Snapshot{
		State:                wa.StateDisconnected,
		LastDisconnectReason: "stream replaced by another device",
	}})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.LastDetail != "stream replaced by another device" {
		t.Errorf("detail = %q", out.LastDetail)
	}
}

func TestInfoRequiresReady(t *testing.T) {
	gw := &fakeGateway{infoErr: bridge.ErrNotConnected}
	uc := NewInfoUsecase(gw)

	if _, err := uc.Execute(context.Background()); !errors.Is(err, bridge.ErrNotConnected) {
		t.Fatalf("err = %v", err)
	}
}

func TestInfoReturnsIdentity(t *testing.T) {
	gw := &fakeGateway{info: wa.OwnerInfo{
		WID:      "5511888888888:12@s.whatsapp.net",
		PushName: "Loja",
		Platform: "smba",
	}}
	uc := NewInfoUsecase(gw)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.WID != gw.info.WID || out.PushName != "Loja" || out.Platform != "smba" {
		t.Errorf("output = %+v", out)
	}
}

func TestLogoutNotInitialized(t *testing.T) {
	gw := &fakeGateway{logoutErr: bridge.ErrNotInitialized}
	uc := NewLogoutUsecase(gw)

	if _, err := uc.Execute(context.Background()); !errors.Is(err, bridge.ErrNotInitialized) {
		t.Fatalf("err = %v", err)
	}
}

func TestRestartDelegates(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewRestartUsecase(gw)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != "restarting" {
		t.Errorf("status = %q", out.Status)
	}
	if gw.restartCalls != 1 {
		t.Errorf("restart calls = %d", gw.restartCalls)
	}
}
