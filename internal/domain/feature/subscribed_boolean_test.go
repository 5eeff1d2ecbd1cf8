package feature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featurekit/featurekit/internal/clock"
	"github.com/featurekit/featurekit/internal/types"
)

func TestBooleanEnableDisable(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	f, err := NewSubscribedBooleanFeature("ads-free", Details{}, clk)
	require.NoError(t, err)

	assert.False(t, f.IsEnabled())
	f.Enable()
	assert.True(t, f.IsEnabled())
	f.Enable() // idempotent
	assert.True(t, f.IsEnabled())
	f.Disable()
	assert.False(t, f.IsEnabled())
}

func TestBooleanIsStillActive(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		activeUntil any
		advance     time.Duration
		want        bool
	}{
		{"no expiry set means inactive", nil, 0, false},
		{"expiry in the future", now.Add(24 * time.Hour), 0, true},
		{"expiry exactly now", now, 0, true},
		{"expiry passed", now.Add(time.Hour), 2 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewFakeClock(now)
			details := Details{DetailEnabled: true}
			if tt.activeUntil != nil {
				details[DetailActiveUntil] = tt.activeUntil
			}
			f, err := NewSubscribedBooleanFeature("ads-free", details, clk)
			require.NoError(t, err)
			clk.Advance(tt.advance)

			assert.Equal(t, tt.want, f.IsStillActive())
		})
	}
}

func TestBooleanDetailsRoundTrip(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	f, err := NewSubscribedBooleanFeature("ads-free", Details{}, clk)
	require.NoError(t, err)
	f.Enable().SetActiveUntil(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	restored, err := NewSubscribedBooleanFeature("ads-free", f.ToDetails(), clk)
	require.NoError(t, err)

	assert.True(t, restored.IsEnabled())
	assert.Equal(t, types.FeatureKindBoolean, restored.Kind())
	require.NotNil(t, restored.ActiveUntil())
	assert.True(t, restored.ActiveUntil().Equal(*f.ActiveUntil()))
}
