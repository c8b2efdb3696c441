package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/registry-enrich/internal/model"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const registrySearchPage = `
<html><body>
<ul id="results">
  <li class="type-company">
    <h3><a class="govuk-link" href="/company/01234567">ACME WIDGETS LTD</a></h3>
    <p class="meta crumbtrail">01234567 - Incorporated on 12 March 2001</p>
    <p>1 Widget Way, Salford, Manchester, M1 1AE</p>
  </li>
  <li class="type-company">
    <h3><a class="govuk-link" href="/company/07654321">ACME WIDGETS (SOUTH) LTD</a></h3>
    <p class="meta crumbtrail">07654321 - Incorporated on 1 May 2015</p>
    <p>5 Other Road, London, EC1A 1BB</p>
  </li>
</ul>
</body></html>`

func TestRegistrySearch(t *testing.T) {
	doc := parseHTML(t, registrySearchPage)

	result := RegistrySearch(doc, "Acme Widgets Ltd")

	assert.Equal(t, "01234567", result.CompanyNumber)
	assert.Equal(t, "/company/01234567", result.DetailPath)
	assert.Equal(t, "12 March 2001", result.IncorporationDate)
	assert.Equal(t, "1 Widget Way, Salford, Manchester, M1 1AE", result.FullAddress)
	assert.Equal(t, "Active", result.Status)
}

func TestRegistrySearchNoResults(t *testing.T) {
	doc := parseHTML(t, `<html><body><p>No results found</p></body></html>`)

	result := RegistrySearch(doc, "Nonexistent Ltd")

	assert.Equal(t, model.Sentinel, result.CompanyNumber)
	assert.Equal(t, model.Sentinel, result.FullAddress)
	assert.Equal(t, model.Sentinel, result.Status)
	assert.Empty(t, result.DetailPath)
}

func TestRegistrySearchLinkOnlyNumber(t *testing.T) {
	// No crumbtrail: the number comes from the detail link target.
	doc := parseHTML(t, `
<li class="type-company">
  <a class="govuk-link" href="/company/sc345678">HIGHLAND TRADING LTD</a>
</li>`)

	result := RegistrySearch(doc, "Highland Trading Ltd")

	assert.Equal(t, "SC345678", result.CompanyNumber)
	assert.Equal(t, "/company/sc345678", result.DetailPath)
	assert.Equal(t, model.Sentinel, result.IncorporationDate)
	assert.Equal(t, model.Sentinel, result.Status)
}

const registryDetailPage = `
<html><body>
<dl>
  <dt>Company status</dt>
  <dd id="company-status">
    Dissolved
  </dd>
  <dt>Company type</dt>
  <dd id="company-type">Private limited Company</dd>
</dl>
<h2 id="sic-title">Nature of business (SIC)</h2>
<ul>
  <li><span id="sic0">41200 - Construction of commercial buildings</span></li>
  <li><span id="sic1">43999 - Other specialised construction activities</span></li>
</ul>
</body></html>`

func TestRegistryDetail(t *testing.T) {
	doc := parseHTML(t, registryDetailPage)

	seed := model.NewRegistryResult()
	seed.CompanyNumber = "01234567"
	seed.Status = "Active"

	result := RegistryDetail(doc, seed)

	assert.Equal(t, "Dissolved", result.Status)
	assert.Equal(t, "Private limited Company", result.CompanyType)
	assert.Equal(t, "41200 - Construction of commercial buildings", result.SICText)
	assert.Equal(t, "01234567", result.CompanyNumber)
}

func TestRegistryDetailMissingSections(t *testing.T) {
	doc := parseHTML(t, `<html><body><h1>Company page</h1></body></html>`)

	seed := model.NewRegistryResult()
	seed.Status = "Active"

	result := RegistryDetail(doc, seed)

	// Missing detail sections leave the search-phase values alone.
	assert.Equal(t, "Active", result.Status)
	assert.Equal(t, model.Sentinel, result.CompanyType)
	assert.Equal(t, model.Sentinel, result.SICText)
}
