package database

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hackdeck/hackdeck/pkg/config"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/store"
)

type datastore struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	logger *log.Logger

	*userStore
	*hackathonStore
	*registrationStore
	*teamStore
	*submissionStore
}

// New returns a new store.Store database.
func New(ctx context.Context, db *db.DB) store.Store {
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("store")

	s := &datastore{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		logger: logger,

		userStore:         &userStore{},
		hackathonStore:    &hackathonStore{},
		registrationStore: &registrationStore{},
		teamStore:         &teamStore{},
		submissionStore:   &submissionStore{},
	}

	return s
}
