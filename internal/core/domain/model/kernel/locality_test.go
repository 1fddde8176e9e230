package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func TestNewLocality(t *testing.T) {
	tests := []struct {
		name    string
		city    string
		country string
		wantErr bool
	}{
		{
			name:    "valid locality",
			city:    "Brussels",
			country: "BE",
		},
		{
			name:    "trims surrounding whitespace",
			city:    "  Antwerp ",
			country: " BE ",
		},
		{
			name:    "blank city",
			city:    "",
			country: "BE",
			wantErr: true,
		},
		{
			name:    "whitespace-only city",
			city:    "   ",
			country: "BE",
			wantErr: true,
		},
		{
			name:    "blank country",
			city:    "Brussels",
			country: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocality(tt.city, tt.country)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
				return
			}

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.NotEmpty(t, loc.City())
			assert.NotEmpty(t, loc.Country())
		})
	}
}

func TestLocality_Comparisons(t *testing.T) {
	brussels, err := kernel.NewLocality("Brussels", "BE")
	require.NoError(t, err)

	t.Run("same city is case-insensitive", func(t *testing.T) {
		other, otherErr := kernel.NewLocality("BRUSSELS", "be")
		require.NoError(t, otherErr)

		assert.True(t, brussels.SameCity(other))
		assert.True(t, brussels.SameCountry(other))
	})

	t.Run("same country different city", func(t *testing.T) {
		antwerp, antwerpErr := kernel.NewLocality("Antwerp", "BE")
		require.NoError(t, antwerpErr)

		assert.False(t, brussels.SameCity(antwerp))
		assert.True(t, brussels.SameCountry(antwerp))
	})

	t.Run("different country", func(t *testing.T) {
		paris, parisErr := kernel.NewLocality("Paris", "FR")
		require.NoError(t, parisErr)

		assert.False(t, brussels.SameCity(paris))
		assert.False(t, brussels.SameCountry(paris))
	})
}

func TestLocality_Validate(t *testing.T) {
	t.Run("zero value locality is invalid", func(t *testing.T) {
		var loc kernel.Locality

		err := loc.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrLocalityIsNotConstructed)
	})
}

func TestLocality_String(t *testing.T) {
	loc, err := kernel.NewLocality("Brussels", "BE")
	require.NoError(t, err)

	assert.Equal(t, "Brussels, BE", loc.String())
}
