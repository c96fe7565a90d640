package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"gradebook/internal/domain"
	"gradebook/internal/services/ledger"
	"gradebook/internal/store"
)

const boltFilename = "gradebook.db"

// Wire bundles the storage backend and ledger service for the CLI.
type Wire struct {
	KV     domain.KV
	Ledger domain.Ledger

	bolt *store.BoltKV // non-nil when the bolt backend is selected
}

// NewWire constructs the dependency graph from cfg and hydrates the ledger.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	w := &Wire{}

	switch cfg.Backend {
	case BackendFile, "":
		w.KV = store.NewFileKV(cfg.Home)
	case BackendBolt:
		db, err := store.OpenBoltKV(filepath.Join(cfg.Home, boltFilename))
		if err != nil {
			return nil, err
		}
		w.bolt = db
		w.KV = db
	default:
		return nil, fmt.Errorf("unknown backend %q (want %q or %q)", cfg.Backend, BackendFile, BackendBolt)
	}

	svc := ledger.New(w.KV, log)
	svc.Load()
	w.Ledger = svc
	return w, nil
}

// Close releases the storage backend, if it holds resources.
func (w *Wire) Close() error {
	if w == nil || w.bolt == nil {
		return nil
	}
	return w.bolt.Close()
}
