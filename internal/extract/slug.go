package extract

import (
	"regexp"
	"strings"
)

var (
	nonSlugRe       = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Slugify converts a company name into the URL slug the directory uses for
// its detail pages: lowercase, "&" becomes "and", characters outside
// [a-z0-9 -] are stripped, runs of whitespace and hyphens collapse to a
// single hyphen.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")
	s = nonSlugRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return s
}

// DirectoryDetailURL builds the directory detail page address from the
// detail base, company number, and slugified company name.
func DirectoryDetailURL(detailBase, companyNumber, companyName string) string {
	return detailBase + "/" + companyNumber + "-" + Slugify(companyName)
}
