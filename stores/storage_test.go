package stores

import (
	"document-catalog/config"
	"document-catalog/core"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStore_ULID(t *testing.T) {
	store, err := GetStore(config.Default().Store)
	require.NoError(t, err)

	saved := store.Save(core.Document{Title: "t"})
	_, err = ulid.ParseStrict(saved.ID)
	assert.NoError(t, err, "default scheme produced %q", saved.ID)
}

func TestGetStore_UUID(t *testing.T) {
	store, err := GetStore(config.StoreConfig{IDScheme: config.IDSchemeUUID})
	require.NoError(t, err)

	saved := store.Save(core.Document{Title: "t"})
	_, err = uuid.Parse(saved.ID)
	assert.NoError(t, err)
}

func TestGetStore_StartsEmpty(t *testing.T) {
	store, err := GetStore(config.Default().Store)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Search(core.SearchRequest{}))
}

func TestGetStore_UnknownScheme(t *testing.T) {
	for _, scheme := range []string{"sequence", ""} {
		store, err := GetStore(config.StoreConfig{IDScheme: scheme})
		require.Error(t, err, "scheme %q", scheme)
		assert.Nil(t, store)
		assert.Contains(t, err.Error(), fmt.Sprintf("%q", scheme))
	}
}

// GetStore and config.Validate must accept the same schemes.
func TestGetStore_AcceptsEveryValidScheme(t *testing.T) {
	for _, scheme := range []string{"", "ulid", "uuid", "sequence"} {
		cfg := config.Default()
		cfg.Store.IDScheme = scheme
		validateErr := cfg.Validate()

		_, storeErr := GetStore(cfg.Store)
		assert.Equal(t, validateErr == nil, storeErr == nil, "scheme %q", scheme)
	}
}
