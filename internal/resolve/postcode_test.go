package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/registry-enrich/internal/model"
)

func TestPostcodePrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full postcode with space", "M1 1AE", "M1"},
		{"full postcode compact", "BB51AA", "BB5"},
		{"long outward code", "EC1A 1BB", "EC1A"},
		{"outward only", "SW1A", "SW1A"},
		{"short fragment kept whole", "M1", "M1"},
		{"lowercase uppercased", "m1 1ae", "M1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PostcodePrefix(tt.in))
		})
	}
}

func TestCityForPostcode(t *testing.T) {
	// Area fallback: M1 is not curated, but area M is Manchester.
	assert.Equal(t, "Manchester", CityForPostcode("M1 1AE"))

	// Exact outward-code match beats the area fallback: BB5 is Preston
	// even though the wider BB area is not.
	assert.Equal(t, "Preston", CityForPostcode("BB5 1AA"))

	assert.Equal(t, "London", CityForPostcode("EC1A 1BB"))
	assert.Equal(t, model.Sentinel, CityForPostcode("ZZ9 9ZZ"))
	assert.Equal(t, model.Sentinel, CityForPostcode(model.Sentinel))
	assert.Equal(t, model.Sentinel, CityForPostcode(""))
}

func TestParseAddress(t *testing.T) {
	addr := ParseAddress("1 Widget Way, Trafford Park, M1 1AE")

	assert.Equal(t, "M1 1AE", addr.Postcode)
	assert.Equal(t, "Manchester", addr.City)
	assert.Equal(t, "1 Widget Way, Trafford Park", addr.Street)
}

func TestParseAddressDropsTrailingKnownCity(t *testing.T) {
	addr := ParseAddress("10 High Street, Manchester, M1 1AE")

	assert.Equal(t, "M1 1AE", addr.Postcode)
	assert.Equal(t, "Manchester", addr.City)
	// The city segment is not repeated in the street.
	assert.Equal(t, "10 High Street", addr.Street)
}

func TestParseAddressNoPostcode(t *testing.T) {
	addr := ParseAddress("Unit 4, Trading Estate")

	assert.Equal(t, model.Sentinel, addr.Postcode)
	assert.Equal(t, model.Sentinel, addr.City)
	assert.Equal(t, "Unit 4, Trading Estate", addr.Street)
}

func TestParseAddressSentinelInput(t *testing.T) {
	addr := ParseAddress(model.Sentinel)

	assert.Equal(t, model.Sentinel, addr.Street)
	assert.Equal(t, model.Sentinel, addr.City)
	assert.Equal(t, model.Sentinel, addr.Postcode)
}

func TestCleanPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"local format", "0161 496 0000", "1614960000"},
		{"international format kept", "+44 161 496 0000", "+441614960000"},
		{"no leading zero", "161 496 0000", "1614960000"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPhone(tt.in))
		})
	}
}
