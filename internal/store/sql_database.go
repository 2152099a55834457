package store

import (
	"database/sql"

	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
