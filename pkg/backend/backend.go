package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hackdeck/hackdeck/pkg/config"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/sas"
	"github.com/hackdeck/hackdeck/pkg/store"
)

// Backend is the hackdeck backend that handles hackathon lifecycle,
// registrations, submissions, and file access resolution.
type Backend struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	store  store.Store
	logger *log.Logger
	cache  *cache
	signer sas.Signer
}

// New returns a new hackdeck backend. When storage credentials are not
// configured the backend runs without a signer and file access degrades
// to unsigned delivery.
func New(ctx context.Context, cfg *config.Config, db *db.DB, st store.Store) *Backend {
	logger := log.FromContext(ctx).WithPrefix("backend")
	b := &Backend{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		store:  st,
		logger: logger,
	}

	signer, err := sas.NewAzureSigner(cfg.Storage.AccountName, cfg.Storage.AccountKey, cfg.Storage.Container)
	if err != nil {
		logger.Warn("url signing disabled", "err", err)
	} else {
		b.signer = signer
	}

	b.cache = newCache(b, 1000)

	return b
}

// WithSigner replaces the URL signer and returns the backend.
func (b *Backend) WithSigner(s sas.Signer) *Backend {
	b.signer = s
	return b
}
