package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/keen-console/src/internal/store"
	"github.com/maksimkurb/keen-console/src/internal/store/storetest"
)

func TestMemoryStorage(t *testing.T) {
	factory := func(ctx context.Context) store.ConfigStore {
		return New()
	}

	teardown := func(_ store.ConfigStore) {}

	storetest.Run(t, factory, teardown)
}

func TestSeed(t *testing.T) {
	s := Seed(map[string]string{"Split Horizon": `{"a":1}`})

	text, err := s.LoadConfig(context.Background(), "Split Horizon")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}

func TestRegistered(t *testing.T) {
	s, err := store.Open("memory", nil)
	require.NoError(t, err)
	assert.IsType(t, &Storage{}, s)
	assert.Contains(t, store.Drivers(), "memory")
}
