package wa

import (
	"strings"

	"go.mau.fi/whatsmeow/types"

	"github.com/autovendas/whatsapp-bridge/internal/domain/phone"
)

// ParseRecipient classifies a raw recipient string. A value that already
// carries a chat suffix (user@server) is parsed verbatim and needLookup is
// false; a bare phone number is normalized and must still be resolved
// against the provider registry (needLookup true, JID carries only the
// digits in User).
func ParseRecipient(raw string) (jid types.JID, needLookup bool, err error) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "@") {
		jid, err = types.ParseJID(raw)
		return jid, false, err
	}

	normalized, err := phone.Normalize(raw)
	if err != nil {
		return types.JID{}, false, err
	}

	return types.JID{User: normalized, Server: types.DefaultUserServer}, true, nil
}
