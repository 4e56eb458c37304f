package usecase

import (
	"context"
	"errors"
	"testing"

	"go.mau.fi/whatsmeow/types"

	"github.com/autovendas/whatsapp-bridge/internal/domain/bridge"
	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
	"github.com/autovendas/whatsapp-bridge/internal/metrics"
	"github.com/autovendas/whatsapp-bridge/internal/pkg/ratelimit"
)

type fakeGateway struct {
	snap wa.Snapshot

	resolveCalls int
	resolvedTo   types.JID
	resolveErr   error

	sendCalls int
	sentTo    types.JID
	sentText  string
	sendErr   error

	info      wa.OwnerInfo
	infoErr   error
	logoutErr error

	restartCalls int
	restartErr   error
}

func (f *fakeGateway) Snapshot() wa.Snapshot           { return f.snap }
func (f *fakeGateway) LinkState() (bool, bool)         { return f.snap.State == wa.StateReady, true }
func (f *fakeGateway) OwnerInfo() (wa.OwnerInfo, error) { return f.info, f.infoErr }
func (f *fakeGateway) Logout(ctx context.Context) error { return f.logoutErr }

func (f *fakeGateway) Restart(ctx context.Context) error {
	f.restartCalls++
	return f.restartErr
}

func (f *fakeGateway) ResolveRecipient(ctx context.Context, raw string) (types.JID, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return types.JID{}, f.resolveErr
	}
	if f.resolvedTo.IsEmpty() {
		jid, _, err := wa.ParseRecipient(raw)
		return jid, err
	}
	return f.resolvedTo, nil
}

func (f *fakeGateway) SendText(ctx context.Context, to types.JID, text string) (string, error) {
	f.sendCalls++
	f.sentTo = to
	f.sentText = text
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return "3EB0FAKEID", nil
}

func readyGateway() *fakeGateway {
	return &fakeGateway{snap: wa.Snapshot{State: wa.StateReady}}
}

func TestSendWhileDisconnected(t *testing.T) {
	gw := &fakeGateway{snap: wa.Snapshot{State: wa.StateDisconnected}}
	uc := NewSendTextUsecase(gw, nil, metrics.New())

	_, err := uc.Execute(context.Background(), SendTextInput{To: "5511999999999", Message: "hi"})
	if !errors.Is(err, bridge.ErrNotConnected) {
		t.Fatalf("err = %v, want ErrNotConnected", err)
	}
	if gw.resolveCalls != 0 || gw.sendCalls != 0 {
		t.Error("no provider call may happen while not ready")
	}
}

func TestSendSuccess(t *testing.T) {
	gw := readyGateway()
	uc := NewSendTextUsecase(gw, nil, metrics.New())

	out, err := uc.Execute(context.Background(), SendTextInput{To: "5511999999999", Message: "  olá  "})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != "success" || out.To != "5511999999999" {
		t.Errorf("output = %+v", out)
	}
	if gw.sentText != "olá" {
		t.Errorf("sent text = %q, want trimmed", gw.sentText)
	}
	if gw.sendCalls != 1 {
		t.Errorf("send calls = %d, want exactly one dispatch", gw.sendCalls)
	}
}

func TestSendValidation(t *testing.T) {
	gw := readyGateway()
	uc := NewSendTextUsecase(gw, nil, metrics.New())

	cases := []SendTextInput{
		{To: "", Message: "hi"},
		{To: "5511999999999", Message: ""},
		{To: "5511999999999", Message: "   "},
	}
	for _, in := range cases {
		if _, err := uc.Execute(context.Background(), in); err == nil {
			t.Errorf("input %+v: expected validation error", in)
		}
	}
	if gw.sendCalls != 0 {
		t.Error("invalid input must not reach the provider")
	}
}

func TestSendRecipientNotFound(t *testing.T) {
	gw := readyGateway()
	gw.resolveErr = bridge.ErrRecipientNotFound
	uc := NewSendTextUsecase(gw, nil, metrics.New())

	_, err := uc.Execute(context.Background(), SendTextInput{To: "5511999999999", Message: "hi"})
	if !errors.Is(err, bridge.ErrRecipientNotFound) {
		t.Fatalf("err = %v", err)
	}
	if gw.sendCalls != 0 {
		t.Error("unresolved recipient must not be sent to")
	}
}

func TestSendRateLimited(t *testing.T) {
	gw := readyGateway()
	uc := NewSendTextUsecase(gw, ratelimit.NewPerKey(0.01, 1), metrics.New())

	in := SendTextInput{To: "5511999999999", Message: "hi"}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, bridge.ErrRateLimited) {
		t.Fatalf("second send err = %v, want ErrRateLimited", err)
	}
	if gw.sendCalls != 1 {
		t.Errorf("send calls = %d", gw.sendCalls)
	}
}

func TestSendFailureSurfaced(t *testing.T) {
	gw := readyGateway()
	gw.sendErr = bridge.ErrSendFailed
	uc := NewSendTextUsecase(gw, nil, metrics.New())

	_, err := uc.Execute(context.Background(), SendTextInput{To: "5511999999999", Message: "hi"})
	if !errors.Is(err, bridge.ErrSendFailed) {
		t.Fatalf("err = %v", err)
	}
	if gw.sendCalls != 1 {
		t.Error("transient send failure must not be retried")
	}
}
