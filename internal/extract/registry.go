// Package extract turns fetched HTML documents into typed partial records.
// Extraction never fails: any missing substructure leaves the corresponding
// field at its sentinel value.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/registry-enrich/internal/model"
)

var (
	detailPathRe = regexp.MustCompile(`/company/(\w+)`)
	incorpDateRe = regexp.MustCompile(`Incorporated\s+on\s+(\d{1,2}\s+\w+\s+\d{4})`)
)

// RegistrySearch extracts the first result item from a registry search page.
// The company number is taken from the result link target, or from the meta
// crumbtrail text when present — the crumbtrail is more reliably formatted,
// so it wins. Presence of an address block implies the registration is live,
// absent contrary evidence from the detail phase.
func RegistrySearch(doc *goquery.Document, companyName string) model.RegistryResult {
	result := model.NewRegistryResult()

	first := doc.Find("li.type-company").First()
	if first.Length() == 0 {
		zap.L().Warn("extract: no registry results", zap.String("company", companyName))
		return result
	}

	if href, ok := first.Find("a.govuk-link").First().Attr("href"); ok && href != "" {
		result.DetailPath = href
		if m := detailPathRe.FindStringSubmatch(href); m != nil {
			result.CompanyNumber = strings.ToUpper(m[1])
		}
	}

	meta := first.Find("p.meta.crumbtrail").First()
	if meta.Length() > 0 {
		metaText := strings.TrimSpace(meta.Text())
		if num := CompanyNumber(metaText); model.IsSet(num) {
			result.CompanyNumber = num
		}
		if m := incorpDateRe.FindStringSubmatch(metaText); m != nil {
			result.IncorporationDate = m[1]
		}
	}

	if addr := firstUnclassedParagraph(first); addr != "" {
		result.FullAddress = addr
		result.Status = "Active"
	}

	return result
}

// RegistryDetail overlays detail-page fields onto a search-phase result:
// authoritative status, company type, and the first nature-of-business code
// description.
func RegistryDetail(doc *goquery.Document, result model.RegistryResult) model.RegistryResult {
	if status := strings.TrimSpace(doc.Find("dd#company-status").First().Text()); status != "" {
		result.Status = status
	}
	if typ := strings.TrimSpace(doc.Find("dd#company-type").First().Text()); typ != "" {
		result.CompanyType = typ
	}

	sicHeading := doc.Find("h2#sic-title").First()
	if sicHeading.Length() > 0 {
		sicList := sicHeading.NextAllFiltered("ul").First()
		sicSpan := sicList.Find(`span[id^="sic"]`).First()
		if sic := strings.TrimSpace(sicSpan.Text()); sic != "" {
			result.SICText = sic
		}
	}

	return result
}

// firstUnclassedParagraph returns the text of the first <p> without a class
// attribute under sel — the registry renders the result address that way.
func firstUnclassedParagraph(sel *goquery.Selection) string {
	var text string
	sel.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if _, hasClass := p.Attr("class"); hasClass {
			return true
		}
		text = strings.TrimSpace(p.Text())
		return false
	})
	return text
}
