// Package qrimage renders a pairing payload as a scannable PNG.
package qrimage

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Size is the rendered image width/height in pixels.
const Size = 400

// DataURL encodes the payload as a PNG QR code with the highest error
// correction level and returns it as a data URL suitable for an <img> tag.
// The transform is pure: the same payload always yields the same image.
func DataURL(payload string) (string, error) {
	png, err := PNG(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Terminal renders the payload as block characters for log output, so a
// headless operator can scan the code straight from the console.
func Terminal(payload string) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("empty qr payload")
	}
	q, err := qrcode.New(payload, qrcode.Highest)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return q.ToSmallString(false), nil
}

// PNG returns the raw PNG bytes for the payload.
func PNG(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("empty qr payload")
	}
	png, err := qrcode.Encode(payload, qrcode.Highest, Size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
