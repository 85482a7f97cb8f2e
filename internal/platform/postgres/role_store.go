package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// RoleStore implements the store.RoleStore interface using PostgreSQL.
type RoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRoleStore creates a new PostgreSQL implementation of store.RoleStore.
func NewRoleStore(db store.DBTX, logger *slog.Logger) *RoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "role_store")),
	}
}

var _ store.RoleStore = (*RoleStore)(nil)

// GetByName implements store.RoleStore.GetByName.
func (s *RoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, name FROM roles WHERE name = $1`

	var role domain.Role
	err := s.db.QueryRowContext(ctx, query, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("role not found", slog.String("name", name))
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to get role by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, MapError(err)
	}

	return &role, nil
}

// WithTx implements store.RoleStore.WithTx.
func (s *RoleStore) WithTx(tx *sql.Tx) store.RoleStore {
	return &RoleStore{
		db:     tx,
		logger: s.logger,
	}
}
