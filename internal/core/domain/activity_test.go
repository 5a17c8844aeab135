package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

func TestNewActivity(t *testing.T) {
	tests := []struct {
		name      string
		kind      domain.ActivityKind
		scheduled string
		hours     float64
		wantErr   error
		wantKind  domain.ActivityKind
		wantTime  *string
	}{
		{name: "Success: empty kind defaults to free", hours: 1, wantKind: domain.ActivityKindFree},
		{name: "Success: free drops the time", kind: domain.ActivityKindFree, scheduled: "09:00", hours: 1, wantKind: domain.ActivityKindFree},
		{name: "Success: time-bound keeps the time", kind: domain.ActivityKindTimeBound, scheduled: " 07:30 ", hours: 0.5, wantKind: domain.ActivityKindTimeBound, wantTime: ptr("07:30")},
		{name: "Error: time-bound without time", kind: domain.ActivityKindTimeBound, hours: 1, wantErr: domain.ErrMissingScheduledTime},
		{name: "Error: bad time", kind: domain.ActivityKindTimeBound, scheduled: "24:00", hours: 1, wantErr: domain.ErrInvalidScheduledTime},
		{name: "Error: unknown kind", kind: "weekly", hours: 1, wantErr: domain.ErrInvalidKind},
		{name: "Error: negative hours", hours: -1, wantErr: domain.ErrInvalidDailyHours},
		{name: "Error: more than a day", hours: 24.5, wantErr: domain.ErrInvalidDailyHours},
		{name: "Error: NaN hours", hours: math.NaN(), wantErr: domain.ErrInvalidDailyHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := domain.NewActivity("u1", "c1", "Run", tt.kind, tt.scheduled, tt.hours)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, a.Kind)
			assert.Equal(t, tt.wantTime, a.ScheduledTime)
			assert.Equal(t, tt.wantTime != nil, a.IsTimeBound())
		})
	}

	t.Run("Error: missing category", func(t *testing.T) {
		_, err := domain.NewActivity("u1", "", "Run", domain.ActivityKindFree, "", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})

	t.Run("Error: empty name", func(t *testing.T) {
		_, err := domain.NewActivity("u1", "c1", "  ", domain.ActivityKindFree, "", 1)
		assert.ErrorIs(t, err, domain.ErrActivityNameEmpty)
	})
}

func TestActivity_Update(t *testing.T) {
	a, err := domain.NewActivity("u1", "c1", "Run", domain.ActivityKindTimeBound, "06:30", 1)
	require.NoError(t, err)

	require.NoError(t, a.Update("c2", "Swim", domain.ActivityKindFree, "06:30", 2))

	assert.Equal(t, domain.ID("c2"), a.CategoryID)
	assert.Equal(t, "Swim", a.Name)
	assert.Nil(t, a.ScheduledTime)
	assert.InDelta(t, 2.0, a.DailyHours, 0.001)

	assert.ErrorIs(t, a.Update("", "Swim", domain.ActivityKindFree, "", 2), domain.ErrInvalidCategory)
}
