// Package bridge holds the failure conditions shared by the gateway
// operations and the HTTP boundary.
package bridge

import "errors"

var (
	// ErrNotConnected is returned by operations that require a ready session.
	ErrNotConnected = errors.New("whatsapp is not connected")

	// ErrNotInitialized is returned when no client has been started yet.
	ErrNotInitialized = errors.New("client is not initialized")

	// ErrRecipientNotFound is returned when a bare phone number is not
	// registered with WhatsApp.
	ErrRecipientNotFound = errors.New("number is not registered on whatsapp")

	// ErrSendFailed wraps provider-side send rejections and timeouts.
	ErrSendFailed = errors.New("send failed")

	// ErrRateLimited is returned when the per-recipient send limit is exceeded.
	ErrRateLimited = errors.New("too many messages to this recipient")

	// ErrRenderFailure is returned when QR image encoding fails.
	ErrRenderFailure = errors.New("failed to render qr code")
)
