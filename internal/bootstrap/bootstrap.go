// Package bootstrap wires configuration, adapters and the label service for
// the inbound adapters (CLI and MCP).
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/attachment"
	"github.com/abdidvp/easydelivery/internal/adapters/outbound/config"
	"github.com/abdidvp/easydelivery/internal/adapters/outbound/easydelivery"
	"github.com/abdidvp/easydelivery/internal/adapters/outbound/history"
	"github.com/abdidvp/easydelivery/internal/adapters/outbound/pgstore"
	"github.com/abdidvp/easydelivery/internal/adapters/outbound/picking"
	"github.com/abdidvp/easydelivery/internal/application"
	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/abdidvp/easydelivery/internal/logger"
	"github.com/rs/zerolog"
)

// Options selects the config file and lets callers override its values.
type Options struct {
	ConfigPath string // empty: .easydelivery.yaml in the working directory
	Driver     domain.StorageDriver
	Dir        string
	DSN        string
	LogOutput  io.Writer
	HTTPClient *http.Client
}

// Runtime is a ready-to-use label service with its collaborators.
type Runtime struct {
	Config  domain.Config
	Log     zerolog.Logger
	Service *application.LabelService
	Loader  domain.PickingLoader
	History domain.LabelHistory
	closers []func() error
}

// Close releases the attachment store.
func (r *Runtime) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// GenerateLabel runs the label service for p and records the outcome in the
// label history. A history write failure is logged, never returned.
func (r *Runtime) GenerateLabel(ctx context.Context, p domain.Picking) (*domain.LabelResult, error) {
	res, err := r.Service.GenerateLabel(ctx, p)

	entry := domain.NewHistoryEntry(time.Now().UTC().Format(time.RFC3339), p, res, err)
	if herr := r.History.Save(entry); herr != nil {
		r.Log.Warn().Err(herr).Msg("could not record label history")
	}
	return res, err
}

// LoadConfig reads the config named by opts and applies the overrides.
func LoadConfig(opts Options) (domain.Config, error) {
	loader := config.New()

	var (
		cfg domain.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = loader.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = loader.Load(".")
	}
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if opts.Driver != "" {
		cfg.Storage.Driver = opts.Driver
	}
	if opts.Dir != "" {
		cfg.Storage.Dir = opts.Dir
	}
	if opts.DSN != "" {
		cfg.Storage.DSN = opts.DSN
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// New builds a Runtime from opts.
func New(ctx context.Context, opts Options) (*Runtime, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	log := logger.New(out, cfg.LogLevel)

	rt := &Runtime{
		Config:  cfg,
		Log:     log,
		Loader:  picking.New(),
		History: history.New(cfg.Storage.HistoryPath()),
	}

	var store domain.AttachmentStore
	switch cfg.Storage.Driver {
	case domain.StoragePostgres:
		pg, err := pgstore.Open(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		rt.closers = append(rt.closers, pg.Close)
		store = pg
	default:
		store = attachment.New(cfg.Storage.Dir)
	}

	rt.Service = application.NewLabelService(
		cfg,
		easydelivery.New(opts.HTTPClient, log),
		store,
		cfg.Company,
		log,
	)
	return rt, nil
}
