package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/esp-integrations/internal/domain"
)

var integrationColumns = []string{
	"id", "provider", "api_key", "server_prefix", "is_active", "account_info", "last_validated_at", "created_at", "updated_at",
}

// newMockIntegrationRepository creates an integrationRepository over a mocked SQL connection
func newMockIntegrationRepository(t *testing.T) (*integrationRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return newIntegrationRepository(sqlx.NewDb(mockDB, "mysql")), mock
}

func TestNewRepositories(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := NewRepositories(sqlx.NewDb(mockDB, "mysql"))
	assert.NotNil(t, repos.Integrations)
}

func TestIntegrationRepository_GetByProvider(t *testing.T) {
	t.Run("finds existing integration", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		id := uuid.New()
		validated := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(integrationColumns).
			AddRow(id[:], "mailchimp", "abcd1234-us6", "us6", true, []byte(`{"accountId":"a1"}`), validated, validated, validated)

		mock.ExpectQuery(`SELECT (.+) FROM integration WHERE provider = \? ORDER BY created_at ASC LIMIT 1`).
			WithArgs("mailchimp").
			WillReturnRows(rows)

		integration, err := repo.GetByProvider(context.Background(), domain.Mailchimp)

		require.NoError(t, err)
		assert.Equal(t, id, integration.ID)
		assert.Equal(t, domain.Mailchimp, integration.Provider)
		assert.Equal(t, "us6", integration.ServerPrefix.String)
		assert.True(t, integration.IsActive)
		assert.Equal(t, "a1", integration.AccountInfo["accountId"])
		assert.Equal(t, validated, integration.LastValidated.Time)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps no rows to not found", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM integration WHERE provider = \?`).
			WithArgs("getresponse").
			WillReturnError(sql.ErrNoRows)

		integration, err := repo.GetByProvider(context.Background(), domain.GetResponse)

		assert.Nil(t, integration)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)
		boom := errors.New("connection reset")

		mock.ExpectQuery(`SELECT (.+) FROM integration`).WillReturnError(boom)

		_, err := repo.GetByProvider(context.Background(), domain.GetResponse)

		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestIntegrationRepository_GetActiveByProvider(t *testing.T) {
	t.Run("filters on is_active", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		id := uuid.New()
		now := time.Now().UTC()
		rows := sqlmock.NewRows(integrationColumns).
			AddRow(id[:], "getresponse", "gr-key", nil, true, []byte(`{}`), now, now, now)

		mock.ExpectQuery(`SELECT (.+) FROM integration WHERE provider = \? AND is_active = 1`).
			WithArgs("getresponse").
			WillReturnRows(rows)

		integration, err := repo.GetActiveByProvider(context.Background(), domain.GetResponse)

		require.NoError(t, err)
		assert.Equal(t, id, integration.ID)
		assert.False(t, integration.ServerPrefix.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inactive record is not found", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM integration WHERE provider = \? AND is_active = 1`).
			WithArgs("mailchimp").
			WillReturnRows(sqlmock.NewRows(integrationColumns))

		_, err := repo.GetActiveByProvider(context.Background(), domain.Mailchimp)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIntegrationRepository_GetAll(t *testing.T) {
	repo, mock := newMockIntegrationRepository(t)

	now := time.Now().UTC()
	first, second := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(integrationColumns).
		AddRow(second[:], "getresponse", "gr", nil, false, nil, nil, now, now).
		AddRow(first[:], "mailchimp", "k-us1", "us1", true, []byte(`{"role":"owner"}`), now, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM integration ORDER BY provider ASC`).WillReturnRows(rows)

	integrations, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, integrations, 2)
	assert.Equal(t, domain.GetResponse, integrations[0].Provider)
	assert.False(t, integrations[0].LastValidated.Valid)
	assert.NotNil(t, integrations[0].AccountInfo)
	assert.Equal(t, domain.Mailchimp, integrations[1].Provider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newTestIntegration() *domain.Integration {
	integration := &domain.Integration{
		ID:       uuid.New(),
		Provider: domain.Mailchimp,
	}
	integration.SetAPIKey("abcd1234-us6")
	integration.MarkValidated(domain.AccountInfo{"accountId": "a1"}, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	return integration
}

func TestIntegrationRepository_Create(t *testing.T) {
	t.Run("inserts row", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)
		integration := newTestIntegration()

		mock.ExpectExec(`INSERT INTO integration`).
			WithArgs(integration.ID, "mailchimp", "abcd1234-us6", "us6", true, []byte(`{"accountId":"a1"}`), integration.LastValidated.Time).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), integration)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate key", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		mock.ExpectExec(`INSERT INTO integration`).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := repo.Create(context.Background(), newTestIntegration())

		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	})

	t.Run("no rows affected", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		mock.ExpectExec(`INSERT INTO integration`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Create(context.Background(), newTestIntegration())

		assert.ErrorIs(t, err, domain.ErrNoRowsAffected)
	})
}

func TestIntegrationRepository_Update(t *testing.T) {
	t.Run("updates mutable fields", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)
		integration := newTestIntegration()
		integration.IsActive = false

		mock.ExpectExec(`UPDATE integration SET api_key = \?, server_prefix = \?, is_active = \?, account_info = \?, last_validated_at = \? WHERE id = uuid_to_bin\(\?\)`).
			WithArgs("abcd1234-us6", "us6", false, sqlmock.AnyArg(), integration.LastValidated.Time, integration.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), integration)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		mock.ExpectExec(`UPDATE integration`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), newTestIntegration())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMockIntegrationRepository(t)

		mock.ExpectExec(`UPDATE integration`).WillReturnError(errors.New("lock wait timeout"))

		err := repo.Update(context.Background(), newTestIntegration())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "update integration by id failed")
	})
}
