package wa

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDBPathForSession(t *testing.T) {
	cases := []struct {
		base    string
		session string
		want    string
	}{
		{"", "default", "default.db"},
		{"./data/whatsapp.db", "default", filepath.Join("./data", "whatsapp-default.db")},
		{"./data", "trial", filepath.Join("./data", "trial.db")},
	}

	for _, tc := range cases {
		if got := DBPathForSession(tc.base, tc.session); got != tc.want {
			t.Errorf("DBPathForSession(%q, %q) = %q, want %q", tc.base, tc.session, got, tc.want)
		}
	}
}

func TestSqliteDSN(t *testing.T) {
	dsn := sqliteDSN("./data/whatsapp.db")
	if !strings.Contains(dsn, "journal_mode(WAL)") || !strings.Contains(dsn, "busy_timeout(5000)") {
		t.Errorf("dsn missing pragmas: %s", dsn)
	}
	if !strings.HasPrefix(dsn, "./data/whatsapp.db?") {
		t.Errorf("dsn should append query to path: %s", dsn)
	}

	withQuery := sqliteDSN("file:x.db?cache=shared")
	if !strings.HasPrefix(withQuery, "file:x.db?cache=shared&") {
		t.Errorf("existing query should be preserved: %s", withQuery)
	}
}
