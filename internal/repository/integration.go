package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vibe-gaming/esp-integrations/internal/db"
	"github.com/vibe-gaming/esp-integrations/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type integrationRepository struct {
	db *sqlx.DB
}

func newIntegrationRepository(db *sqlx.DB) *integrationRepository {
	return &integrationRepository{
		db: db,
	}
}

func (r *integrationRepository) GetByProvider(ctx context.Context, provider domain.Provider) (*domain.Integration, error) {
	const query = `
	SELECT id, provider, api_key, server_prefix, is_active, account_info, last_validated_at, created_at, updated_at
	FROM integration WHERE provider = ? ORDER BY created_at ASC LIMIT 1;
	`
	var integration domain.Integration
	if err := r.db.GetContext(ctx, &integration, query, provider); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from integration by provider failed: %w", err)
	}
	return &integration, nil
}

func (r *integrationRepository) GetActiveByProvider(ctx context.Context, provider domain.Provider) (*domain.Integration, error) {
	const query = `
	SELECT id, provider, api_key, server_prefix, is_active, account_info, last_validated_at, created_at, updated_at
	FROM integration WHERE provider = ? AND is_active = 1 ORDER BY created_at ASC LIMIT 1;
	`
	var integration domain.Integration
	if err := r.db.GetContext(ctx, &integration, query, provider); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select active integration by provider failed: %w", err)
	}
	return &integration, nil
}

func (r *integrationRepository) GetAll(ctx context.Context) ([]domain.Integration, error) {
	const query = `
	SELECT id, provider, api_key, server_prefix, is_active, account_info, last_validated_at, created_at, updated_at
	FROM integration ORDER BY provider ASC;
	`
	var integrations []domain.Integration
	if err := r.db.SelectContext(ctx, &integrations, query); err != nil {
		return nil, fmt.Errorf("select all integrations failed: %w", err)
	}
	return integrations, nil
}

func (r *integrationRepository) Create(ctx context.Context, integration *domain.Integration) error {
	const query = `
	INSERT INTO integration
	(id, provider, api_key, server_prefix, is_active, account_info, last_validated_at)
	VALUES(uuid_to_bin(?), ?, ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		integration.ID,
		integration.Provider,
		integration.APIKey,
		integration.ServerPrefix,
		integration.IsActive,
		integration.AccountInfo,
		integration.LastValidated,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert integration: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

// Update overwrites the mutable fields of the record with integration.ID.
// The connection runs with clientFoundRows, so zero affected rows means the row is gone.
func (r *integrationRepository) Update(ctx context.Context, integration *domain.Integration) error {
	const query = `
	UPDATE integration
	SET api_key = ?, server_prefix = ?, is_active = ?, account_info = ?, last_validated_at = ?
	WHERE id = uuid_to_bin(?);
	`

	result, err := r.db.ExecContext(ctx, query,
		integration.APIKey,
		integration.ServerPrefix,
		integration.IsActive,
		integration.AccountInfo,
		integration.LastValidated,
		integration.ID,
	)
	if err != nil {
		return fmt.Errorf("update integration by id failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
