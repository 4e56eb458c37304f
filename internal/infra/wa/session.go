package wa

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	"github.com/autovendas/whatsapp-bridge/internal/domain/bridge"
	"github.com/autovendas/whatsapp-bridge/internal/qrimage"
)

const connectTimeout = 25 * time.Second

// MessageSink receives inbound chat events for relay to the backend.
type MessageSink interface {
	Enqueue(evt *events.Message)
}

// OwnerInfo identifies the linked WhatsApp account.
type OwnerInfo struct {
	WID      string
	PushName string
	Platform string
}

// Session owns the single provider connection of the bridge: the client
// handle, its lifecycle state machine, and the credential store behind it.
type Session struct {
	log       walog.Logger
	container *sqlstore.Container
	machine   *Machine
	onChange  func(Snapshot)

	mu     sync.Mutex
	client *whatsmeow.Client
	sink   MessageSink
}

// NewSession wires a session around an opened credential store. onChange
// is invoked on every lifecycle transition and may be nil.
func NewSession(container *sqlstore.Container, logger walog.Logger, onChange func(Snapshot)) *Session {
	return &Session{
		log:       logger,
		container: container,
		machine:   NewMachine(),
		onChange:  onChange,
	}
}

// SetSink installs the inbound message consumer. Must be called before
// Initialize; the relay depends on the session for media downloads, so it
// cannot be passed to the constructor.
func (s *Session) SetSink(sink MessageSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
}

// Snapshot returns the current lifecycle state without touching the network.
func (s *Session) Snapshot() Snapshot {
	return s.machine.Snapshot()
}

// Initialize starts the provider client. Valid only while uninitialized,
// disconnected, or auth_failed; a session that is pairing or ready must be
// restarted instead. There is no automatic retry loop behind this: a failed
// initialize leaves the machine where it was for an explicit caller retry.
func (s *Session) Initialize(ctx context.Context) error {
	switch snap := s.machine.Snapshot(); snap.State {
	case StateUninitialized, StateDisconnected, StateAuthFailed:
	default:
		return fmt.Errorf("initialize not allowed while %s", snap.State)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		device, err := deviceFromContainer(ctx, s.container)
		if err != nil {
			return fmt.Errorf("load device: %w", err)
		}
		client := newBridgeClient(device, s.log)
		client.AddEventHandler(s.handleEvent)
		s.client = client
	}

	if s.client.IsConnected() {
		return nil
	}

	return connectWithTimeout(ctx, s.client, connectTimeout)
}

// Restart tears down the current client, if any, and initializes again.
// Safe from any state; callers poll status for readiness.
func (s *Session) Restart(ctx context.Context) error {
	s.mu.Lock()
	if s.client != nil {
		s.client.Disconnect()
		s.client = nil
	}
	s.mu.Unlock()

	s.transition(s.machine.Reset(StateUninitialized, ""))
	return s.Initialize(ctx)
}

// Logout deauthorizes the session with the provider and clears the
// persisted credentials, so the next initialize starts a fresh pairing.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()

	if client == nil {
		return bridge.ErrNotInitialized
	}

	if err := client.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.mu.Lock()
	s.client = nil
	s.mu.Unlock()

	s.transition(s.machine.Reset(StateDisconnected, "logout"))
	return nil
}

// LinkState reports the live socket and login flags of the client.
func (s *Session) LinkState() (connected, loggedIn bool) {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()

	if client == nil {
		return false, false
	}
	return client.IsConnected(), client.IsLoggedIn()
}

// OwnerInfo returns the linked account identity. Requires ready.
func (s *Session) OwnerInfo() (OwnerInfo, error) {
	client, err := s.readyClient()
	if err != nil {
		return OwnerInfo{}, err
	}

	id := client.Store.ID
	if id == nil {
		return OwnerInfo{}, bridge.ErrNotConnected
	}

	return OwnerInfo{
		WID:      id.String(),
		PushName: client.Store.PushName,
		Platform: client.Store.Platform,
	}, nil
}

// ResolveRecipient turns a raw recipient into a canonical chat JID. A
// recipient already carrying a chat suffix is used verbatim; a bare phone
// number is checked against the provider registry.
func (s *Session) ResolveRecipient(ctx context.Context, raw string) (types.JID, error) {
	jid, needLookup, err := ParseRecipient(raw)
	if err != nil {
		return types.JID{}, err
	}
	if !needLookup {
		return jid, nil
	}

	client, err := s.readyClient()
	if err != nil {
		return types.JID{}, err
	}

	resp, err := client.IsOnWhatsApp(ctx, []string{"+" + jid.User})
	if err != nil {
		return types.JID{}, fmt.Errorf("registry lookup: %w", err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return types.JID{}, bridge.ErrRecipientNotFound
	}

	return resp[0].JID, nil
}

// SendText dispatches exactly one text message. Requires ready; a
// disconnect racing the send surfaces as ErrSendFailed, never as corrupted
// state.
func (s *Session) SendText(ctx context.Context, to types.JID, text string) (string, error) {
	client, err := s.readyClient()
	if err != nil {
		return "", err
	}

	msg := &waE2E.Message{Conversation: proto.String(text)}
	resp, err := client.SendMessage(ctx, to, msg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", bridge.ErrSendFailed, err)
	}

	return resp.ID, nil
}

// Download fetches the media content of an inbound message.
func (s *Session) Download(ctx context.Context, msg whatsmeow.DownloadableMessage) ([]byte, error) {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()

	if client == nil {
		return nil, bridge.ErrNotInitialized
	}
	return client.Download(ctx, msg)
}

// readyClient re-validates the lifecycle state immediately before handing
// out the client handle.
func (s *Session) readyClient() (*whatsmeow.Client, error) {
	if s.machine.Snapshot().State != StateReady {
		return nil, bridge.ErrNotConnected
	}

	s.mu.Lock()
	client := s.client
	s.mu.Unlock()

	if client == nil {
		return nil, bridge.ErrNotConnected
	}
	return client, nil
}

// newBridgeClient builds the provider client. A dropped socket must stay
// disconnected until an explicit restart, so the client's built-in
// auto-reconnect is turned off.
func newBridgeClient(device *store.Device, logger walog.Logger) *whatsmeow.Client {
	client := whatsmeow.NewClient(device, logger)
	client.EnableAutoReconnect = false
	return client
}

func (s *Session) handleEvent(evt interface{}) {
	switch e := evt.(type) {
	case *events.QR:
		if len(e.Codes) > 0 {
			s.apply(Event{Kind: EventQR, Payload: e.Codes[0]})
			if art, err := qrimage.Terminal(e.Codes[0]); err == nil {
				s.log.Infof("scan the QR code below to pair:\n%s", art)
			}
		}

	case *events.PairSuccess:
		s.apply(Event{Kind: EventAuthenticated})

	case *events.Connected:
		s.apply(Event{Kind: EventReady})

	case *events.PairError:
		s.apply(Event{Kind: EventAuthFailure, Reason: fmt.Sprintf("pair error: %v", e.Error)})

	case *events.ConnectFailure:
		s.apply(Event{Kind: EventAuthFailure, Reason: fmt.Sprintf("connect failure: %v", e.Reason)})

	case *events.LoggedOut:
		// Remote deauthorization: a ready session drops to disconnected,
		// anything mid-pairing is an auth failure.
		reason := fmt.Sprintf("logged out: %v", e.Reason)
		if s.machine.Snapshot().State == StateReady {
			s.apply(Event{Kind: EventDisconnected, Reason: reason})
		} else {
			s.apply(Event{Kind: EventAuthFailure, Reason: reason})
		}

	case *events.StreamReplaced:
		s.apply(Event{Kind: EventDisconnected, Reason: "stream replaced by another device"})

	case *events.Disconnected:
		s.apply(Event{Kind: EventDisconnected, Reason: "connection lost"})

	case *events.Message:
		s.mu.Lock()
		sink := s.sink
		s.mu.Unlock()
		if sink != nil {
			sink.Enqueue(e)
		}
	}
}

func (s *Session) apply(e Event) {
	snap, changed := s.machine.Apply(e)
	if !changed {
		return
	}

	s.log.Infof("session state -> %s", snap.State)
	if snap.LastDisconnectReason != "" {
		s.log.Warnf("session detail: %s", snap.LastDisconnectReason)
	}
	s.transition(snap)
}

func (s *Session) transition(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

// connector is the slice of the client connectWithTimeout drives.
type connector interface {
	IsConnected() bool
	Connect() error
	Disconnect()
}

func connectWithTimeout(ctx context.Context, client connector, timeout time.Duration) error {
	if client.IsConnected() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- client.Connect()
	}()

	select {
	case <-ctx.Done():
		// Tear down the attempt still in flight: a failed initialize must
		// not leave a connection that could later fire ready on its own.
		client.Disconnect()
		return fmt.Errorf("connect timeout: %w", ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		return nil
	}
}
