package resolve

import "strings"

// ukCities are official UK cities stripped from street addresses when they
// trail the comma-separated remainder.
var ukCities = []string{
	"Bath", "Birmingham", "Bradford", "Brighton and hove", "Bristol", "Cambridge",
	"Canterbury", "Carlisle", "Chelmsford", "Chester", "Chichester", "Colchester",
	"Coventry", "Derby", "Doncaster", "Durham", "Ely", "Exeter", "Gloucester",
	"Hereford", "Kingston upon hull", "Lancaster", "Leeds", "Leicester", "Lichfield",
	"Lincoln", "Liverpool", "London", "Manchester", "Milton keynes", "Newcastle upon tyne",
	"Norwich", "Nottingham", "Oxford", "Peterborough", "Plymouth", "Portsmouth",
	"Preston", "Ripon", "Salford", "Salisbury", "Sheffield", "Southampton",
	"Southend on sea", "St albans", "Stoke on trent", "Sunderland", "Truro",
	"Wakefield", "Wells", "Westminster", "Winchester", "Wolverhampton", "Worcester",
	"York", "Aberdeen", "Dundee", "Dunfermline", "Edinburgh", "Glasgow", "Inverness",
	"Stirling", "Bangor", "Cardiff", "Newport", "St asaph", "St davids", "Wrexham",
	"Armagh", "Belfast", "Derry", "Lisburn", "Newry", "Coleraine", "Ballymena",
	"Londonderry",
}

// ukCitiesLower is the lookup set derived from ukCities.
var ukCitiesLower = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ukCities))
	for _, city := range ukCities {
		m[strings.ToLower(city)] = struct{}{}
	}
	return m
}()

func isKnownCity(name string) bool {
	_, ok := ukCitiesLower[strings.ToLower(name)]
	return ok
}

// postcodeCityIndex maps outward codes and postcode areas to cities. Both
// tiers live in one table: 3-4 character outward codes are curated where a
// district's post town differs from its area's principal city (e.g. BB5 is
// Accrington's district but routes through Preston), and bare 1-2 letter
// areas cover the rest. Read-only after init.
var postcodeCityIndex = map[string]string{
	// Curated outward codes.
	"BB5":  "Preston",
	"BB1":  "Preston",
	"BB2":  "Preston",
	"PR1":  "Preston",
	"PR2":  "Preston",
	"OL1":  "Manchester",
	"OL6":  "Manchester",
	"SK1":  "Manchester",
	"SK4":  "Manchester",
	"WA1":  "Liverpool",
	"WN1":  "Manchester",
	"DN1":  "Doncaster",
	"HD1":  "Leeds",
	"HX1":  "Leeds",
	"RG1":  "Oxford",
	"MK1":  "Milton keynes",
	"MK9":  "Milton keynes",
	"CM1":  "Chelmsford",
	"SS1":  "Southend on sea",
	"GU1":  "Winchester",
	"SO14": "Southampton",
	"PO1":  "Portsmouth",

	// Postcode areas.
	"AB": "Aberdeen",
	"B":  "Birmingham",
	"BA": "Bath",
	"BD": "Bradford",
	"BN": "Brighton and hove",
	"BS": "Bristol",
	"BT": "Belfast",
	"CA": "Carlisle",
	"CB": "Cambridge",
	"CF": "Cardiff",
	"CH": "Chester",
	"CO": "Colchester",
	"CT": "Canterbury",
	"CV": "Coventry",
	"DD": "Dundee",
	"DE": "Derby",
	"DH": "Durham",
	"E":  "London",
	"EC": "London",
	"EH": "Edinburgh",
	"EX": "Exeter",
	"G":  "Glasgow",
	"GL": "Gloucester",
	"HR": "Hereford",
	"HU": "Kingston upon hull",
	"IV": "Inverness",
	"L":  "Liverpool",
	"LA": "Lancaster",
	"LE": "Leicester",
	"LN": "Lincoln",
	"LS": "Leeds",
	"M":  "Manchester",
	"N":  "London",
	"NE": "Newcastle upon tyne",
	"NG": "Nottingham",
	"NP": "Newport",
	"NR": "Norwich",
	"NW": "London",
	"OX": "Oxford",
	"PE": "Peterborough",
	"PL": "Plymouth",
	"PO": "Portsmouth",
	"PR": "Preston",
	"S":  "Sheffield",
	"SA": "Swansea",
	"SE": "London",
	"SL": "Windsor",
	"SO": "Southampton",
	"SR": "Sunderland",
	"ST": "Stoke on trent",
	"SW": "London",
	"TR": "Truro",
	"W":  "London",
	"WC": "London",
	"WF": "Wakefield",
	"WR": "Worcester",
	"WV": "Wolverhampton",
	"YO": "York",
}
