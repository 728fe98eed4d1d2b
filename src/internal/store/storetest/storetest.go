// Package storetest contains a test suite shared by store drivers.
package storetest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/keen-console/src/internal/store"
)

type (
	// StoreFactory should create a new, empty store instance.
	StoreFactory func(ctx context.Context) store.ConfigStore

	// TeardownFunc is invoked after the suite.
	TeardownFunc func(store.ConfigStore)
)

// Run executes a test suite to ensure store implementations match the
// requirements.
func Run(t *testing.T, factory StoreFactory, teardown TeardownFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	instance := factory(ctx)
	require.NotNil(t, instance)
	defer teardown(instance)

	t.Run("LoadMissing", func(t *testing.T) {
		text, err := instance.LoadConfig(ctx, "Split Horizon")
		assert.NoError(t, err, "a missing app must load as empty text")
		assert.Equal(t, "", text)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		const text = "{\n  \"enable\": true,\n  \"networks\": [\n    \"10.0.0.0/8\"\n  ]\n}"
		require.NoError(t, instance.SaveConfig(ctx, "Split Horizon", text))

		loaded, err := instance.LoadConfig(ctx, "Split Horizon")
		require.NoError(t, err)
		assert.Equal(t, text, loaded, "text must be stored verbatim")
	})

	t.Run("StoresInvalidText", func(t *testing.T) {
		// stores never interpret the text they keep
		const text = `{"enable": tru`
		require.NoError(t, instance.SaveConfig(ctx, "Broken", text))

		loaded, err := instance.LoadConfig(ctx, "Broken")
		require.NoError(t, err)
		assert.Equal(t, text, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, instance.SaveConfig(ctx, "Split Horizon", `{"enable":false}`))

		loaded, err := instance.LoadConfig(ctx, "Split Horizon")
		require.NoError(t, err)
		assert.Equal(t, `{"enable":false}`, loaded)
	})

	t.Run("SaveEmpty", func(t *testing.T) {
		require.NoError(t, instance.SaveConfig(ctx, "Blank", ""))

		loaded, err := instance.LoadConfig(ctx, "Blank")
		require.NoError(t, err)
		assert.Equal(t, "", loaded)
	})

	t.Run("InvalidAppID", func(t *testing.T) {
		for _, app := range []string{"", "bad\x00id", strings.Repeat("a", store.MaxAppIDLength+1)} {
			err := instance.SaveConfig(ctx, app, "{}")
			var invalid *store.ErrInvalidAppID
			assert.True(t, errors.As(err, &invalid), "app %q must be rejected", app)

			_, err = instance.LoadConfig(ctx, app)
			assert.True(t, errors.As(err, &invalid), "app %q must be rejected", app)
		}
	})

	t.Run("ListApps", func(t *testing.T) {
		lister, ok := instance.(store.AppLister)
		if !ok {
			t.Skip("store does not list apps")
		}
		apps, err := lister.ListApps(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Split Horizon", "Broken", "Blank"}, apps)
	})
}
