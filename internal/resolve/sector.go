package resolve

import (
	"strings"

	"github.com/sells-group/registry-enrich/internal/model"
)

// SectorDormant short-circuits classification: dormancy is mutually
// exclusive with any other sector signal.
const SectorDormant = "Dormant company"

// SectorUnknown is returned when text is present but no keyword matches.
const SectorUnknown = "Sector Unknown"

type sectorEntry struct {
	Name     string
	Keywords []string
}

// sectorKeywords maps sectors to lowercase keyword phrases. The slice is
// ordered on purpose: when two keywords of identical length both match,
// the earlier table entry wins, which makes the tie-break deterministic.
var sectorKeywords = []sectorEntry{
	// Construction and property.
	{"Builders and construction", []string{
		"construction", "building", "erection", "development projects", "residential building",
		"demolition", "civil engineering", "renovation", "plumbing", "electricians",
		"roofing", "carpentry", "foundations", "framing", "glazing", "joinery",
		"plastering", "scaffolding", "specialised construction",
	}},
	{"Real estate", []string{
		"real estate", "property", "letting agent", "estate agent", "residents property management",
		"property management", "buying and selling of real estate",
	}},
	{"Architect", []string{"architect", "architecture", "quantity surveying", "design planning"}},
	{"Installation of industrial machinery and equipment", []string{
		"industrial machinery installation", "equipment installation", "electrical wiring installation",
	}},
	{"Development of building projects", []string{
		"development of building projects", "house construction", "domestic buildings",
	}},
	{"Maintenance and repair of motor vehicles", []string{
		"repair", "maintenance", "motor vehicles", "vehicle recovery", "handyman services",
	}},

	// Professional services.
	{"Management consultancy", []string{
		"management consulting", "business consulting", "change management", "outsourcing",
		"risk evaluation", "strategy consulting", "operations consulting",
	}},
	{"Accountants", []string{"accounting", "bookkeeping", "tax", "auditing", "financial audit"}},
	{"Lawyers and solicitors and barristers", []string{
		"solicitor", "lawyer", "legal services", "legal practice", "barrister",
	}},
	{"Human resources services", []string{
		"employment placement", "recruitment", "staffing", "human resources", "talent acquisition",
	}},
	{"Administration", []string{
		"administration", "head office", "office administration", "corporate office management",
	}},

	// IT and technology.
	{"Information technology and services", []string{
		"information technology", "it services", "cloud computing", "cybersecurity",
		"computer programming", "software development", "web development", "systems integration",
		"analytics", "embedded software", "ai", "artificial intelligence", "robotics",
	}},
	{"Telecommunications", []string{"telecommunications", "wireless communication", "network services"}},

	// Retail, hospitality, and food.
	{"Retail", []string{
		"retail sale", "wholesale", "store", "dealership", "shop", "boutique", "supermarket",
		"thrift", "ecommerce", "e-commerce", "online shop",
	}},
	{"Restaurants", []string{
		"restaurant", "pub", "takeaway", "food stand", "cafe", "coffee shop", "bar",
	}},
	{"Hotels", []string{
		"hotel", "accommodation", "holiday rental", "lodging", "hospitality",
	}},

	// Manufacturing and industry.
	{"Manufacturing", []string{
		"manufacturing", "production", "fabrication", "making of", "assembly",
		"appliances", "electronics", "textile", "chemical", "plastic", "rubber",
		"machinery", "packaging", "container manufacturing", "equipment manufacturing",
	}},

	// Media, marketing, and communication.
	{"Advertising", []string{
		"advertising", "content marketing", "digital marketing", "public relations",
		"branding", "creative services", "communications services",
	}},
	{"Media", []string{
		"media production", "broadcasting", "film", "motion picture", "video production",
		"sound recording", "publishing", "internet publishing", "music production",
	}},

	// Health and wellness.
	{"Healthcare", []string{
		"medical", "healthcare", "dental", "optometry", "radiology",
		"clinical research", "pharmacy", "veterinary", "hospital",
	}},
	{"Wellness", []string{
		"wellness", "yoga", "pilates", "meditation", "fitness", "massage", "therapy",
		"counselling", "mental health",
	}},
	{"Beauty", []string{
		"beauty", "hair", "barber", "salon", "cosmetics", "skincare", "spa", "aesthetics",
	}},

	// Transport and logistics.
	{"Freight and logistics", []string{
		"freight", "logistics", "courier", "warehousing", "storage", "cargo", "distribution",
	}},
	{"Transport", []string{
		"transport", "taxi", "bus", "rail", "ground passenger", "sightseeing", "vehicle transport",
	}},

	// Finance and business.
	{"Financial services", []string{
		"financial services", "banking", "capital markets", "investment management",
		"fintech", "insurance", "venture capital", "private equity",
	}},
	{"Business support services", []string{
		"business support", "back office", "shared services", "corporate services", "bpo",
	}},

	// Education and training.
	{"Education", []string{
		"education", "training", "academy", "learning", "school", "college", "e-learning",
		"professional training", "language school", "teaching",
	}},

	// Charity and nonprofit.
	{"Charities and non profits", []string{
		"charity", "non-profit", "philanthropy", "social organization", "fundraising",
		"community development", "voluntary organization",
	}},
}

// ClassifySector maps a SIC description to a sector by keyword matching.
// Sentinel or "n/a" input returns the sentinel. A "dormant company" mention
// wins outright. Otherwise the sector owning the longest matching keyword
// wins — longer phrases like "residential building" are more specific than
// generic ones like "building". No match at all returns SectorUnknown.
func ClassifySector(sicText string) string {
	if !model.IsSet(sicText) || strings.EqualFold(sicText, model.Sentinel) {
		return model.Sentinel
	}

	lower := strings.ToLower(sicText)
	if strings.Contains(lower, "dormant company") {
		return SectorDormant
	}

	best := ""
	maxLen := 0
	for _, entry := range sectorKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) && len(keyword) > maxLen {
				best = entry.Name
				maxLen = len(keyword)
			}
		}
	}

	if maxLen == 0 {
		return SectorUnknown
	}
	return best
}
