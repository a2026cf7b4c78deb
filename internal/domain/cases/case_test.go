package cases

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCase(t *testing.T) {
	collexID := uuid.New()

	t.Run("creates case with valid attributes", func(t *testing.T) {
		c, err := NewCase(1234567890, CaseTypeHousehold, AddressLevelUnit, "E1000", collexID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, int64(1234567890), c.CaseRef)
		assert.Equal(t, CaseTypeHousehold, c.CaseType)
		assert.Equal(t, AddressLevelUnit, c.AddressLevel)
		assert.Equal(t, "E1000", c.Region)
		assert.Equal(t, collexID, c.CollectionExerciseID)
	})

	t.Run("fails with non-positive case ref", func(t *testing.T) {
		_, err := NewCase(0, CaseTypeHousehold, AddressLevelUnit, "E1000", collexID)
		assert.Error(t, err)

		_, err = NewCase(-1, CaseTypeHousehold, AddressLevelUnit, "E1000", collexID)
		assert.Error(t, err)
	})

	t.Run("fails with unknown case type", func(t *testing.T) {
		_, err := NewCase(123, CaseType("XX"), AddressLevelUnit, "E1000", collexID)
		assert.Error(t, err)
	})

	t.Run("fails with unknown address level", func(t *testing.T) {
		_, err := NewCase(123, CaseTypeCommunalEstablishment, AddressLevel("X"), "E1000", collexID)
		assert.Error(t, err)
	})

	t.Run("fails with empty region", func(t *testing.T) {
		_, err := NewCase(123, CaseTypeHousehold, AddressLevelUnit, "  ", collexID)
		assert.Error(t, err)
	})
}

func TestCountryFromRegion(t *testing.T) {
	tests := []struct {
		region string
		want   Country
		ok     bool
	}{
		{"E1000", CountryEngland, true},
		{"W1000", CountryWales, true},
		{"N1000", CountryNorthernIreland, true},
		{"E", CountryEngland, true},
		{"Z1000", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got, ok := CountryFromRegion(tt.region)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaseCountry(t *testing.T) {
	c, err := NewCase(123, CaseTypeSPG, AddressLevelEstablishment, "W06000015", uuid.New())
	require.NoError(t, err)

	country, ok := c.Country()

	assert.True(t, ok)
	assert.Equal(t, CountryWales, country)
}
