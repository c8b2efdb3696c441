// Package resolve normalizes free-text address, phone, and
// nature-of-business data into canonical fields using process-wide
// read-only lookup tables.
package resolve

import (
	"regexp"
	"strings"

	"github.com/sells-group/registry-enrich/internal/model"
)

// UK postcode: 1-2 letters, 1-2 digits, optional letter, optional space,
// digit, 2 letters.
var postcodeRe = regexp.MustCompile(`(?i)\b([A-Z]{1,2}\d{1,2}[A-Z]?\s?\d[A-Z]{2})\b`)

// Address holds the components resolved from a free-text address.
type Address struct {
	Street   string
	City     string
	Postcode string
}

// ParseAddress splits a free-text address into street, city, and postcode.
// The postcode is matched anywhere in the text; everything before it is the
// address remainder. The city comes from the postcode index, never from the
// remainder — but a trailing segment that names a known city is dropped
// from the street so it is not duplicated.
func ParseAddress(fullAddress string) Address {
	addr := Address{
		Street:   model.Sentinel,
		City:     model.Sentinel,
		Postcode: model.Sentinel,
	}
	if !model.IsSet(fullAddress) {
		return addr
	}

	remainder := fullAddress
	if loc := postcodeRe.FindStringSubmatchIndex(fullAddress); loc != nil {
		addr.Postcode = strings.ToUpper(strings.TrimSpace(fullAddress[loc[2]:loc[3]]))
		remainder = strings.TrimRight(fullAddress[:loc[0]], ", ")
		addr.City = CityForPostcode(addr.Postcode)
	}

	var parts []string
	for _, part := range strings.Split(remainder, ",") {
		if p := strings.TrimSpace(part); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 && isKnownCity(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 0 {
		addr.Street = strings.Join(parts, ", ")
	}

	return addr
}

// PostcodePrefix derives the outward code: the compact postcode minus its
// final 3 characters (the inward code) when at least 5 characters remain
// after stripping spaces, else the whole compact form.
func PostcodePrefix(postcode string) string {
	compact := strings.ReplaceAll(strings.ToUpper(postcode), " ", "")
	if len(compact) >= 5 {
		return compact[:len(compact)-3]
	}
	return compact
}

// CityForPostcode resolves a postcode to a city via a two-tier lookup:
// the exact outward code first, then the 1-2 letter postcode area as a
// fallback. Granular outward codes are only curated for a minority of
// districts; the area fallback gives best-effort coverage for the rest.
func CityForPostcode(postcode string) string {
	if !model.IsSet(postcode) {
		return model.Sentinel
	}

	prefix := PostcodePrefix(postcode)
	if city, ok := postcodeCityIndex[prefix]; ok {
		return city
	}

	area := postcodeArea(prefix)
	if city, ok := postcodeCityIndex[area]; ok {
		return city
	}

	return model.Sentinel
}

// postcodeArea returns the leading 1-2 alphabetic characters of an outward
// code.
func postcodeArea(prefix string) string {
	end := 0
	for end < len(prefix) && end < 2 && prefix[end] >= 'A' && prefix[end] <= 'Z' {
		end++
	}
	return prefix[:end]
}
