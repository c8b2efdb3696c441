package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/registry-enrich/internal/model"
)

// DirectorySearch extracts the first company result from a directory search
// page. The result's info grid lays out label/value element pairs; labels
// are matched by substring since the directory decorates them with counts
// and icons.
func DirectorySearch(doc *goquery.Document, companyName string) model.DirectorySearchResult {
	result := model.NewDirectorySearchResult()

	companyLink := doc.Find("a._company-name").First()
	if companyLink.Length() == 0 {
		zap.L().Warn("extract: no directory results", zap.String("company", companyName))
		return result
	}

	infoGrid := companyLink.Parent().Find("div._company-info.grid-resp").First()
	if infoGrid.Length() == 0 {
		return result
	}

	items := infoGrid.ChildrenFiltered("div")
	for i := 0; i+1 < items.Length(); i += 2 {
		label := strings.TrimSpace(items.Eq(i).Text())
		valueDiv := items.Eq(i + 1)
		value := strings.TrimSpace(valueDiv.Text())

		switch {
		case strings.Contains(label, "Company No"):
			if value != "" {
				result.CompanyNumber = value
			}
		case strings.Contains(label, "Status"):
			if status := strings.TrimSpace(valueDiv.Find("div.status").First().Text()); status != "" {
				result.Status = status
			}
		case strings.Contains(label, "Website"):
			result.Website = anchorOrText(valueDiv, value)
		}
	}

	return result
}

// DirectoryDetail extracts contact fields from a directory detail page.
// Telephone is left raw here; normalization happens at merge time.
func DirectoryDetail(doc *goquery.Document) model.DirectoryDetailResult {
	result := model.NewDirectoryDetailResult()

	doc.Find("div.info-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("div._title").First().Text())
		stat := item.Find("div._stat").First()
		if title == "" || stat.Length() == 0 {
			return
		}
		value := strings.TrimSpace(stat.Text())

		switch {
		case strings.Contains(title, "Telephone"):
			if value != "" {
				result.Telephone = value
			}
		case strings.Contains(title, "Email"):
			if value != "" {
				result.Email = value
			}
		case strings.Contains(title, "Website"):
			if w := anchorOrText(stat, value); w != "" {
				result.Website = w
			}
		}
	})

	return result
}

// anchorOrText prefers an anchor's target over the raw element text; the
// directory renders most websites as links but some as bare text.
func anchorOrText(sel *goquery.Selection, fallback string) string {
	if href, ok := sel.Find("a").First().Attr("href"); ok && href != "" {
		return href
	}
	if fallback != "" {
		return fallback
	}
	return model.Sentinel
}
