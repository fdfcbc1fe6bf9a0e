//go:build unit

package agency_test

import (
	"testing"
	"time"

	"onvacation-backend/internal/domain/agency"
	"onvacation-backend/internal/pkg/clock"
	"onvacation-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgency(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAgencyBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Viajes Andinos", actual.Name())
		assert.Equal(t, "contacto@viajesandinos.co", actual.Email())
		assert.True(t, actual.IsActive())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.AgencyBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.AgencyBuilder) { b.WithName("") },
				errIs:  agency.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.AgencyBuilder) { b.WithName("   ") },
				errIs:  agency.ErrEmptyName,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.AgencyBuilder) { b.WithEmail("") },
				errIs:  agency.ErrEmptyEmail,
			},
			{
				name:   "no contact person or phone",
				mutate: func(b *builder.AgencyBuilder) { b.WithContactPerson(nil).WithPhone(nil) },
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewAgencyBuilder().With(c.mutate).BuildDomain()

				if c.errIs == nil {
					require.NotNil(t, actual)
					require.NoError(t, err)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("update refreshes updatedAt and keeps id and createdAt", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
		ag, err := agency.NewAgency(clk, "Viajes Andinos", "contacto@viajesandinos.co", nil, nil)
		require.NoError(t, err)

		id := ag.ID()
		createdAt := ag.CreatedAt()
		clk.Add(30 * time.Minute)

		err = ag.Update("Viajes del Caribe", "ventas@viajesdelcaribe.co", nil, nil, true, clk.Now())
		require.NoError(t, err)

		assert.Equal(t, id, ag.ID())
		assert.Equal(t, createdAt, ag.CreatedAt())
		assert.Equal(t, clk.Now(), ag.UpdatedAt())
		assert.Equal(t, "Viajes del Caribe", ag.Name())
	})

	t.Run("deactivate and activate", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
		ag, err := agency.NewAgency(clk, "Viajes Andinos", "contacto@viajesandinos.co", nil, nil)
		require.NoError(t, err)
		require.True(t, ag.IsActive())

		clk.Add(time.Minute)
		ag.Deactivate(clk.Now())
		assert.False(t, ag.IsActive())
		assert.Equal(t, clk.Now(), ag.UpdatedAt())

		clk.Add(time.Minute)
		ag.Activate(clk.Now())
		assert.True(t, ag.IsActive())
		assert.Equal(t, clk.Now(), ag.UpdatedAt())
	})
}
