package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.WebhookURL != "http://bot:5000/webhook" {
		t.Errorf("unexpected default webhook url %q", cfg.WebhookURL)
	}
	if cfg.WebhookTimeout != 30*time.Second {
		t.Errorf("expected 30s webhook timeout, got %s", cfg.WebhookTimeout)
	}
	if cfg.SendBurst != 1 {
		t.Errorf("expected send burst 1, got %d", cfg.SendBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MEDIA_TIMEOUT_SECONDS", "5")
	t.Setenv("SEND_RATE", "2")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.MediaTimeout != 5*time.Second {
		t.Errorf("expected 5s media timeout, got %s", cfg.MediaTimeout)
	}
	if cfg.SendRate != 2 {
		t.Errorf("expected send rate 2, got %v", cfg.SendRate)
	}
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	t.Setenv("WEBHOOK_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("SEND_BURST", "-3")

	cfg := Load()

	if cfg.WebhookTimeout != 30*time.Second {
		t.Errorf("expected fallback webhook timeout, got %s", cfg.WebhookTimeout)
	}
	if cfg.SendBurst != 1 {
		t.Errorf("expected fallback send burst, got %d", cfg.SendBurst)
	}
}
