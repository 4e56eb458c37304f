package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"
	"golang.org/x/time/rate"

	apphttp "github.com/autovendas/whatsapp-bridge/internal/app/http"
	"github.com/autovendas/whatsapp-bridge/internal/app/usecase"
	"github.com/autovendas/whatsapp-bridge/internal/config"
	"github.com/autovendas/whatsapp-bridge/internal/infra/relay"
	"github.com/autovendas/whatsapp-bridge/internal/infra/wa"
	"github.com/autovendas/whatsapp-bridge/internal/metrics"
	"github.com/autovendas/whatsapp-bridge/internal/pkg/ratelimit"
)

func main() {
	cfg := config.Load()

	logger := walog.Stdout("BRIDGE", cfg.LogLevel, true)
	m := metrics.New()

	dbPath := wa.DBPathForSession(cfg.SQLitePath, cfg.SessionName)
	container, err := wa.OpenSQLStore(dbPath, logger)
	if err != nil {
		log.Fatalf("credential store: %v", err)
	}

	session := wa.NewSession(container, logger, func(snap wa.Snapshot) {
		m.ConnectionState.Set(float64(snap.State.Ordinal()))
	})

	rly := relay.New(relay.Config{
		WebhookURL:     cfg.WebhookURL,
		Downloader:     session,
		Logger:         logger,
		Metrics:        m,
		MediaTimeout:   cfg.MediaTimeout,
		WebhookTimeout: cfg.WebhookTimeout,
	})
	session.SetSink(rly)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go rly.Run(ctx)

	go func() {
		if err := session.Initialize(ctx); err != nil {
			log.Printf("initialize session: %v", err)
		}
	}()

	limiter := ratelimit.NewPerKey(rate.Limit(cfg.SendRate), cfg.SendBurst)
	limiter.StartCleanup(ctx.Done())

	handler := apphttp.NewHandler(
		usecase.NewSendTextUsecase(session, limiter, m),
		usecase.NewQRUsecase(session),
		usecase.NewStatusUsecase(session),
		usecase.NewInfoUsecase(session),
		usecase.NewLogoutUsecase(session),
		usecase.NewRestartUsecase(session),
	)
	router := apphttp.NewRouter(handler, m.Handler())

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		log.Printf("HTTP listening on :%s, relaying to %s", cfg.Port, cfg.WebhookURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}
