package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	logx "github.com/Zachkp/portfolio/internal/log"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logx.WithComponent("main")
		l.Fatal().Err(err).Msg("load config")
	}
	logx.Configure(logx.Config{Level: cfg.LogLevel})
	logger := logx.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()

	catalog, err := projects.LoadDefault()
	if err != nil {
		logger.Fatal().Err(err).Msg("load projects")
	}

	to := cfg.Email.To
	if to == "" {
		to = content.ContactEmail
	}
	mail := contact.NewService(newSender(cfg.Email), to,
		contact.WithRecorder(db),
		contact.WithObserver(server.ObserveContact),
		contact.WithLogger(logx.WithComponent("contact")),
	)

	srv, err := server.New(server.Deps{
		Config:  cfg,
		Store:   db,
		Catalog: catalog,
		Contact: mail,
		Logger:  logx.WithComponent("http"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("build server")
	}
	go srv.RunMaintenance(ctx, time.Hour)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Str("variant", cfg.Variant).
			Str("email_transport", cfg.Email.Transport).
			Int("projects", catalog.Len()).
			Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("stopped")
}

func newSender(cfg config.Email) contact.Sender {
	if cfg.Transport == config.TransportSMTP {
		return contact.NewSMTPSender(contact.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
		})
	}
	return contact.NewAPISender(contact.APIConfig{
		URL:         cfg.APIURL,
		ServiceID:   cfg.ServiceID,
		TemplateID:  cfg.TemplateID,
		PublicKey:   cfg.PublicKey,
		AccessToken: cfg.AccessToken,
	})
}
