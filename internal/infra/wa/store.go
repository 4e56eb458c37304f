package wa

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"
)

// OpenSQLStore opens (or creates) the credential store backing the session.
// Opening retries with exponential backoff because a WAL-locked database
// from a previous unclean shutdown can take a moment to become available.
func OpenSQLStore(sqlPath string, logger walog.Logger) (*sqlstore.Container, error) {
	var container *sqlstore.Container

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 1 * time.Second
	policy.MaxElapsedTime = 25 * time.Second

	err := backoff.Retry(func() error {
		c, err := openSQLStoreOnce(sqlPath)
		if err != nil {
			logger.Warnf("open credential store: %v", err)
			return err
		}
		container = c
		return nil
	}, policy)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	return container, nil
}

func openSQLStoreOnce(sqlPath string) (*sqlstore.Container, error) {
	if err := os.MkdirAll(filepath.Dir(sqlPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	db, err := sql.Open("sqlite", sqliteDSN(sqlPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	container := sqlstore.NewWithDB(db, "sqlite", nil)
	if err := container.Upgrade(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("upgrade db schema: %w", err)
	}

	return container, nil
}

func sqliteDSN(path string) string {
	params := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return path + "?" + params
}

// DBPathForSession derives the on-disk database file for a named session
// profile from the configured base path.
func DBPathForSession(basePath, session string) string {
	if basePath == "" {
		return session + ".db"
	}

	if filepath.Ext(basePath) == ".db" {
		dir := filepath.Dir(basePath)
		base := strings.TrimSuffix(filepath.Base(basePath), ".db")
		return filepath.Join(dir, base+"-"+session+".db")
	}

	return filepath.Join(basePath, session+".db")
}

func deviceFromContainer(ctx context.Context, container *sqlstore.Container) (*store.Device, error) {
	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, err
	}
	if device == nil {
		device = container.NewDevice()
	}
	return device, nil
}
