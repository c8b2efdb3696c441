package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/registry-enrich/internal/model"
)

func registryFixture() model.RegistryResult {
	r := model.NewRegistryResult()
	r.CompanyNumber = "01234567"
	r.StreetAddress = "1 Widget Way, Salford"
	r.City = "Manchester"
	r.Postcode = "M1 1AE"
	r.IncorporationDate = "12 March 2001"
	r.Status = "Active"
	r.CompanyType = "Private limited Company"
	r.SICText = "41200 - Construction of commercial buildings"
	return r
}

func TestMergeRegistryOnly(t *testing.T) {
	record := Merge("Acme Widgets Ltd", Records{
		Registry:        registryFixture(),
		DirectorySearch: model.NewDirectorySearchResult(),
		DirectoryDetail: model.NewDirectoryDetailResult(),
	})

	assert.Equal(t, "Acme Widgets Ltd", record.CompanyName)
	assert.Equal(t, "01234567", record.CompanyNumber)
	assert.Equal(t, "1 Widget Way, Salford", record.StreetAddress)
	assert.Equal(t, "Manchester", record.City)
	assert.Equal(t, "M1 1AE", record.Postcode)
	assert.Equal(t, "Active", record.Status)
	assert.Equal(t, "Construction of commercial buildings", record.ShortDescription)
	assert.Equal(t, "Builders and construction", record.Sector)
	assert.Equal(t, model.SourceRegistryOnly, record.Source)
	assert.Equal(t, model.Sentinel, record.Telephone)
	assert.Equal(t, model.Sentinel, record.Website)
}

func TestMergeRegistryNumberBeatsDirectory(t *testing.T) {
	dirSearch := model.NewDirectorySearchResult()
	dirSearch.CompanyNumber = "09999999"

	record := Merge("Acme Widgets Ltd", Records{
		Registry:        registryFixture(),
		DirectorySearch: dirSearch,
		DirectoryDetail: model.NewDirectoryDetailResult(),
	})

	assert.Equal(t, "01234567", record.CompanyNumber)
	assert.Equal(t, model.SourceBoth, record.Source)
}

func TestMergeDirectoryStatusOverridesRegistry(t *testing.T) {
	dirSearch := model.NewDirectorySearchResult()
	dirSearch.Status = "Dissolved"

	record := Merge("Acme Widgets Ltd", Records{
		Registry:        registryFixture(),
		DirectorySearch: dirSearch,
		DirectoryDetail: model.NewDirectoryDetailResult(),
	})

	// The directory status wins even over a non-sentinel registry status.
	assert.Equal(t, "Dissolved", record.Status)
}

func TestMergeDirectoryOnly(t *testing.T) {
	dirSearch := model.NewDirectorySearchResult()
	dirSearch.CompanyNumber = "09999999"
	dirSearch.Status = "Active"

	dirDetail := model.NewDirectoryDetailResult()
	dirDetail.Telephone = "0161 999 9999"
	dirDetail.Email = "hello@b.example"
	dirDetail.Website = "https://b.example"

	record := Merge("B Ltd", Records{
		Registry:        model.NewRegistryResult(),
		DirectorySearch: dirSearch,
		DirectoryDetail: dirDetail,
	})

	assert.Equal(t, "09999999", record.CompanyNumber)
	assert.Equal(t, "Active", record.Status)
	assert.Equal(t, "1619999999", record.Telephone)
	assert.Equal(t, "hello@b.example", record.Email)
	assert.Equal(t, "https://b.example", record.Website)
	assert.Equal(t, model.SourceDirectoryOnly, record.Source)
	// Registry-owned fields stay at the sentinel.
	assert.Equal(t, model.Sentinel, record.IncorporationDate)
	assert.Equal(t, model.Sentinel, record.Sector)
}

func TestMergeSearchWebsiteBeatsDetailWebsite(t *testing.T) {
	dirSearch := model.NewDirectorySearchResult()
	dirSearch.Website = "https://search.example"

	dirDetail := model.NewDirectoryDetailResult()
	dirDetail.Website = "https://detail.example"

	record := Merge("C Ltd", Records{
		Registry:        model.NewRegistryResult(),
		DirectorySearch: dirSearch,
		DirectoryDetail: dirDetail,
	})

	assert.Equal(t, "https://search.example", record.Website)
}

func TestMergeNoSources(t *testing.T) {
	record := Merge("Ghost Ltd", Records{
		Registry:        model.NewRegistryResult(),
		DirectorySearch: model.NewDirectorySearchResult(),
		DirectoryDetail: model.NewDirectoryDetailResult(),
	})

	assert.Equal(t, "Ghost Ltd", record.CompanyName)
	assert.Equal(t, model.Sentinel, record.CompanyNumber)
	assert.Equal(t, model.SourceNone, record.Source)
}

func TestMergeDormantShortDescription(t *testing.T) {
	reg := registryFixture()
	reg.SICText = "99999 - Dormant Company"

	record := Merge("Sleepy Ltd", Records{
		Registry:        reg,
		DirectorySearch: model.NewDirectorySearchResult(),
		DirectoryDetail: model.NewDirectoryDetailResult(),
	})

	assert.Equal(t, "Dormant Company", record.ShortDescription)
	assert.Equal(t, "Dormant company", record.Sector)
}

func TestMergeSICWithoutSeparator(t *testing.T) {
	reg := registryFixture()
	reg.SICText = "None Supplied"

	record := Merge("Acme Widgets Ltd", Records{
		Registry:        reg,
		DirectorySearch: model.NewDirectorySearchResult(),
		DirectoryDetail: model.NewDirectoryDetailResult(),
	})

	assert.Equal(t, "None Supplied", record.SICText)
	assert.Equal(t, model.Sentinel, record.ShortDescription)
	assert.Equal(t, model.Sentinel, record.Sector)
}

func TestMergeDeterministic(t *testing.T) {
	in := Records{
		Registry:        registryFixture(),
		DirectorySearch: model.NewDirectorySearchResult(),
		DirectoryDetail: model.NewDirectoryDetailResult(),
	}

	first := Merge("Acme Widgets Ltd", in)
	second := Merge("Acme Widgets Ltd", in)
	assert.Equal(t, first, second)
}
