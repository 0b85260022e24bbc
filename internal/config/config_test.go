package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/go-facture/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(filepath.Join(t.TempDir(), "config.json"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ma Société", cfg.Company.Name)
	assert.Len(t, cfg.Items, 2)
}

func TestSetCompany_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	company := models.Company{
		Name:          "ACME SARL",
		LogoPath:      "/tmp/logo.png",
		LogoMaxWidth:  80,
		LogoMaxHeight: 40,
	}
	require.NoError(t, m.SetCompany(company))

	got, err := m.Company()
	require.NoError(t, err)
	assert.Equal(t, company, got)
}

func TestUpsertItem(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.UpsertItem("conseil", "Conseil", 120))
	items, err := m.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 3) // two defaults plus the new one

	// Updating an existing key must not append.
	require.NoError(t, m.UpsertItem("conseil", "Conseil senior", 150))
	items, err = m.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 3)

	var found *models.Item
	for i := range items {
		if items[i].Key == "conseil" {
			found = &items[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Conseil senior", found.Label)
	assert.Equal(t, 150.0, found.UnitPrice)
}

func TestNextNumber_SequencesPerType(t *testing.T) {
	m := newTestManager(t)

	n1, err := m.NextNumber(models.TypeQuote, "D-", 4)
	require.NoError(t, err)
	n2, err := m.NextNumber(models.TypeQuote, "D-", 4)
	require.NoError(t, err)
	f1, err := m.NextNumber(models.TypeInvoice, "F-", 5)
	require.NoError(t, err)

	assert.Equal(t, "D-0001", n1)
	assert.Equal(t, "D-0002", n2)
	assert.Equal(t, "F-00001", f1)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("FACTURE_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOr("FACTURE_TEST_KEY", "def"))
	assert.Equal(t, "def", EnvOr("FACTURE_TEST_MISSING", "def"))
}
