package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerPrefix(t *testing.T) {
	tests := []struct {
		apiKey string
		want   string
	}{
		{"abcd1234-us6", "us6"},
		{"abc-def-us21", "us21"},
		{"nodash", "nodash"},
		{"trailing-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.apiKey, func(t *testing.T) {
			assert.Equal(t, tt.want, ServerPrefix(tt.apiKey))
		})
	}
}

func TestIntegrationSetAPIKey(t *testing.T) {
	t.Run("mailchimp derives prefix", func(t *testing.T) {
		i := &Integration{Provider: Mailchimp}
		i.SetAPIKey("abcd1234-us6")

		assert.Equal(t, "abcd1234-us6", i.APIKey)
		assert.True(t, i.ServerPrefix.Valid)
		assert.Equal(t, "us6", i.ServerPrefix.String)

		i.SetAPIKey("efgh5678-us19")
		assert.Equal(t, "us19", i.ServerPrefix.String)
	})

	t.Run("getresponse has no prefix", func(t *testing.T) {
		i := &Integration{Provider: GetResponse}
		i.SetAPIKey("gr-key-1")

		assert.False(t, i.ServerPrefix.Valid)
	})
}

func TestIntegrationMarkValidated(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	i := &Integration{Provider: Mailchimp}

	i.MarkValidated(AccountInfo{"accountId": "a1"}, now)

	assert.True(t, i.IsActive)
	assert.Equal(t, "a1", i.AccountInfo["accountId"])
	assert.True(t, i.LastValidated.Valid)
	assert.Equal(t, now, i.LastValidated.Time)
}

func TestAccountInfoValueScan(t *testing.T) {
	v, err := AccountInfo{"email": "owner@example.com"}.Value()
	require.NoError(t, err)

	var got AccountInfo
	require.NoError(t, got.Scan(v))
	assert.Equal(t, "owner@example.com", got["email"])

	var fromString AccountInfo
	require.NoError(t, fromString.Scan(`{"role":"owner"}`))
	assert.Equal(t, "owner", fromString["role"])

	var fromNull AccountInfo
	require.NoError(t, fromNull.Scan(nil))
	assert.NotNil(t, fromNull)

	var bad AccountInfo
	assert.Error(t, bad.Scan(42))

	empty, err := AccountInfo(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), empty)
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider("mailchimp")
	require.NoError(t, err)
	assert.Equal(t, Mailchimp, p)
	assert.Equal(t, "Mailchimp", p.Title())
	assert.Equal(t, "Getresponse", GetResponse.Title())

	for _, bad := range []string{"", "MailChimp", "sendgrid"} {
		_, err := ParseProvider(bad)
		assert.ErrorIs(t, err, ErrUnknownProvider, bad)
	}
}

func TestListEntryJSONFlattensDetails(t *testing.T) {
	entry := ListEntry{
		ID:   "c1",
		Name: "Newsletter",
		GetResponseDetails: &GetResponseDetails{
			LanguageCode: "EN",
		},
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "EN", got["languageCode"])
	assert.Equal(t, float64(0), got["subscribersCount"])
	assert.Equal(t, float64(0), got["unsubscribedCount"])
	assert.NotContains(t, got, "memberCount")
}
