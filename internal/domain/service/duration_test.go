//go:build unit

package service_test

import (
	"testing"

	"stable-booking-api/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{in: "30m", minutes: 30},
		{in: "45 min", minutes: 45},
		{in: "90 minutes", minutes: 90},
		{in: "1h", minutes: 60},
		{in: "1hr", minutes: 60},
		{in: "1.5h", minutes: 90},
		{in: "2 hours", minutes: 120},
		{in: "0.25h", minutes: 15},
		{in: "90", minutes: 90},
		{in: " 30m ", minutes: 30},
		{in: "1.5HR", minutes: 90},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-30", wantErr: true},
		{in: "0h", wantErr: true},
		{in: "30s", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := service.ParseDurationMinutes(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, service.ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.minutes, got)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "30 min", service.FormatDuration(30))
	assert.Equal(t, "1 hr", service.FormatDuration(60))
	assert.Equal(t, "2 hr", service.FormatDuration(120))
	assert.Equal(t, "1h 30min", service.FormatDuration(90))
}

func TestNewService(t *testing.T) {
	adminID := uuid.New()

	t.Run("valid service", func(t *testing.T) {
		svc, err := service.New("Grooming", nil, 1500, "45m", adminID)
		require.NoError(t, err)

		assert.Equal(t, "Grooming", svc.Name())
		assert.Equal(t, 1500, svc.Price().Pence())
		assert.Equal(t, 45, svc.DurationMinutes())
		assert.True(t, svc.Active())
		require.NotNil(t, svc.CreatedBy())
		assert.Equal(t, adminID, *svc.CreatedBy())
	})

	t.Run("name required", func(t *testing.T) {
		_, err := service.New("", nil, 1500, "45m", adminID)
		require.ErrorIs(t, err, service.ErrNameRequired)
	})

	t.Run("price must be positive", func(t *testing.T) {
		_, err := service.New("Grooming", nil, 0, "45m", adminID)
		require.ErrorIs(t, err, service.ErrInvalidPrice)

		_, err = service.New("Grooming", nil, -100, "45m", adminID)
		require.ErrorIs(t, err, service.ErrInvalidPrice)
	})

	t.Run("duration must parse", func(t *testing.T) {
		_, err := service.New("Grooming", nil, 1500, "soon", adminID)
		require.ErrorIs(t, err, service.ErrInvalidDuration)
	})

	t.Run("rename revalidates", func(t *testing.T) {
		svc, err := service.New("Grooming", nil, 1500, "45m", adminID)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Rename("", nil, 1500, "45m"), service.ErrNameRequired)
		require.ErrorIs(t, svc.Rename("Clipping", nil, -1, "45m"), service.ErrInvalidPrice)

		require.NoError(t, svc.Rename("Clipping", nil, 4500, "1.5h"))
		assert.Equal(t, "Clipping", svc.Name())
		assert.Equal(t, 4500, svc.Price().Pence())
		assert.Equal(t, 90, svc.DurationMinutes())
	})
}
