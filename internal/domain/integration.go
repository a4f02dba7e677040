package domain

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountInfo is the provider account metadata captured on the last successful validation.
type AccountInfo map[string]any

// Value stores the map as a JSON document.
func (a AccountInfo) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

// Scan decodes the JSON column, NULL becomes an empty map.
func (a *AccountInfo) Scan(value interface{}) error {
	if value == nil {
		*a = AccountInfo{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for AccountInfo: %T", value)
	}

	info := AccountInfo{}
	if err := json.Unmarshal(bytes, &info); err != nil {
		return err
	}
	*a = info
	return nil
}

type Integration struct {
	ID            uuid.UUID      `db:"id"`
	Provider      Provider       `db:"provider"`
	APIKey        string         `db:"api_key"`
	ServerPrefix  sql.NullString `db:"server_prefix"`
	IsActive      bool           `db:"is_active"`
	AccountInfo   AccountInfo    `db:"account_info"`
	LastValidated sql.NullTime   `db:"last_validated_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SetAPIKey assigns the credential and recomputes the fields derived from it.
func (i *Integration) SetAPIKey(apiKey string) {
	i.APIKey = apiKey
	if i.Provider == Mailchimp {
		i.ServerPrefix = sql.NullString{String: ServerPrefix(apiKey), Valid: true}
	} else {
		i.ServerPrefix = sql.NullString{}
	}
}

// MarkValidated records a successful validation at t.
func (i *Integration) MarkValidated(info AccountInfo, t time.Time) {
	i.IsActive = true
	i.AccountInfo = info
	i.LastValidated = sql.NullTime{Time: t, Valid: true}
}

// ServerPrefix returns the Mailchimp data center encoded after the last "-" of an API key.
// A key without "-" is returned unchanged.
func ServerPrefix(apiKey string) string {
	if idx := strings.LastIndex(apiKey, "-"); idx >= 0 {
		return apiKey[idx+1:]
	}
	return apiKey
}
