package feature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featurekit/featurekit/internal/clock"
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	factory, err := NewFactoryWithMode(types.FactoryModeSubscribed, clk)
	require.NoError(t, err)

	names := []string{"zeta", "alpha", "mid"}
	c, err := NewCollectionFromDetails(factory, names, map[string]Details{
		"zeta":  {DetailType: "boolean", DetailEnabled: true},
		"alpha": {DetailType: "rechargeable", DetailRemainedQuantity: 10},
		"mid":   {DetailType: "boolean"},
	})
	require.NoError(t, err)

	assert.Equal(t, names, c.Names())
	assert.Equal(t, 3, c.Len())

	got := make([]string, 0, 3)
	for _, f := range c.All() {
		got = append(got, f.Name())
	}
	assert.Equal(t, names, got)
}

func TestCollectionRejectsDuplicates(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	c := NewCollection()

	f, err := NewSubscribedBooleanFeature("ads-free", Details{}, clk)
	require.NoError(t, err)
	require.NoError(t, c.Add(f))

	err = c.Add(f)
	require.Error(t, err)
	assert.True(t, ierr.IsAlreadyExists(err))
	assert.Equal(t, 1, c.Len())
}

func TestCollectionGet(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	c := NewCollection()

	f, err := NewSubscribedBooleanFeature("ads-free", Details{}, clk)
	require.NoError(t, err)
	require.NoError(t, c.Add(f))

	got, err := c.Get("ads-free")
	require.NoError(t, err)
	assert.Equal(t, "ads-free", got.Name())
	assert.True(t, c.Has("ads-free"))

	_, err = c.Get("missing")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.False(t, c.Has("missing"))
}

func TestCollectionFromDetailsMissingEntry(t *testing.T) {
	factory, err := NewFactoryWithMode(types.FactoryModeSubscribed, nil)
	require.NoError(t, err)

	_, err = NewCollectionFromDetails(factory, []string{"ads-free"}, map[string]Details{})
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestCollectionToDetails(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	factory, err := NewFactoryWithMode(types.FactoryModeSubscribed, clk)
	require.NoError(t, err)

	c, err := NewCollectionFromDetails(factory, []string{"ads-free", "api-calls"}, map[string]Details{
		"ads-free": {DetailType: "boolean", DetailEnabled: true},
		"api-calls": {
			DetailType:             "countable",
			DetailSubscribedPack:   100,
			DetailConsumedQuantity: 20,
			DetailRemainedQuantity: 80,
		},
	})
	require.NoError(t, err)

	out := c.ToDetails()
	require.Len(t, out, 2)
	assert.Equal(t, true, out["ads-free"][DetailEnabled])
	assert.Equal(t, 80, out["api-calls"][DetailRemainedQuantity])
}
