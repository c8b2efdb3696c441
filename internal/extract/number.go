package extract

import (
	"regexp"
	"strings"

	"github.com/sells-group/registry-enrich/internal/model"
)

// Company registration numbers are 6-8 digits with an optional 1-2 letter
// prefix. Tried in order: bare word-bounded number, labeled forms, and the
// "NNNNNNNN - " prefix the registry uses in crumbtrail text.
var companyNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b([A-Z]{0,2}\d{6,8})\b`),
	regexp.MustCompile(`(?i)(?:Company\s+No\.?|Registration\s+No\.?|CRN)[:\s]+([A-Z]{0,2}\d{6,8})`),
	regexp.MustCompile(`(?i)^([A-Z]{0,2}\d{6,8})\s*-`),
}

// CompanyNumber extracts a company registration number from free text,
// returning the sentinel when none matches.
func CompanyNumber(text string) string {
	if text == "" {
		return model.Sentinel
	}
	for _, re := range companyNumberPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return model.Sentinel
}
