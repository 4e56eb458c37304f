package wa

import (
	"testing"

	"go.mau.fi/whatsmeow/types"
)

func TestParseRecipientQualified(t *testing.T) {
	for _, raw := range []string{
		"5511999999999@s.whatsapp.net",
		"98765432109876@lid",
		"123456789-987654@g.us",
	} {
		jid, needLookup, err := ParseRecipient(raw)
		if err != nil {
			t.Errorf("ParseRecipient(%q) error: %v", raw, err)
			continue
		}
		if needLookup {
			t.Errorf("ParseRecipient(%q): qualified recipient must not be re-resolved", raw)
		}
		if jid.String() != raw {
			t.Errorf("ParseRecipient(%q) = %q", raw, jid.String())
		}
	}
}

func TestParseRecipientBareNumber(t *testing.T) {
	jid, needLookup, err := ParseRecipient("+55 11 99999-9999")
	if err != nil {
		t.Fatalf("ParseRecipient error: %v", err)
	}
	if !needLookup {
		t.Error("bare number must require registry lookup")
	}
	if jid.User != "5511999999999" {
		t.Errorf("jid.User = %q", jid.User)
	}
	if jid.Server != types.DefaultUserServer {
		t.Errorf("jid.Server = %q", jid.Server)
	}
}

func TestParseRecipientInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "123"} {
		if _, _, err := ParseRecipient(raw); err == nil {
			t.Errorf("ParseRecipient(%q): expected error", raw)
		}
	}
}
