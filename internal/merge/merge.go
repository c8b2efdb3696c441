// Package merge reconciles the two sources' partial records into one
// canonical record under fixed field-level precedence.
package merge

import (
	"strings"

	"github.com/sells-group/registry-enrich/internal/model"
	"github.com/sells-group/registry-enrich/internal/resolve"
)

// Records combines one registry result, one directory search result, and
// one directory detail result for a single business name.
type Records struct {
	Registry        model.RegistryResult
	DirectorySearch model.DirectorySearchResult
	DirectoryDetail model.DirectoryDetailResult
}

// Merge builds the canonical record. Precedence is phase order: registry
// seeds first, directory search second, directory detail last. No field is
// ever overwritten from one non-sentinel value to another — first writer
// wins — with one exception: a non-sentinel directory status replaces the
// registry's search-page inference, which is the staler signal.
func Merge(companyName string, in Records) model.CanonicalRecord {
	record := model.NewCanonicalRecord(companyName)

	registryContributed := model.IsSet(in.Registry.CompanyNumber)
	if registryContributed {
		record.CompanyNumber = in.Registry.CompanyNumber
		record.StreetAddress = in.Registry.StreetAddress
		record.City = in.Registry.City
		record.Postcode = in.Registry.Postcode
		record.IncorporationDate = in.Registry.IncorporationDate
		record.Status = in.Registry.Status
		record.CompanyType = in.Registry.CompanyType
		record.SICText = in.Registry.SICText
		record.Source = model.SourceRegistryOnly

		if short := shortDescription(in.Registry.SICText); short != "" {
			record.ShortDescription = short
			record.Sector = resolve.ClassifySector(short)
		}
	}

	if !model.IsSet(record.CompanyNumber) && model.IsSet(in.DirectorySearch.CompanyNumber) {
		record.CompanyNumber = in.DirectorySearch.CompanyNumber
	}
	if model.IsSet(in.DirectorySearch.Status) {
		record.Status = in.DirectorySearch.Status
	}
	if !model.IsSet(record.Website) && model.IsSet(in.DirectorySearch.Website) {
		record.Website = in.DirectorySearch.Website
	}

	directoryContributed := model.IsSet(in.DirectorySearch.CompanyNumber) ||
		model.IsSet(in.DirectorySearch.Status) ||
		model.IsSet(in.DirectorySearch.Website) ||
		model.IsSet(in.DirectoryDetail.Telephone) ||
		model.IsSet(in.DirectoryDetail.Email) ||
		model.IsSet(in.DirectoryDetail.Website)

	switch {
	case registryContributed && directoryContributed:
		record.Source = model.SourceBoth
	case directoryContributed:
		record.Source = model.SourceDirectoryOnly
	}

	if !model.IsSet(record.Telephone) && model.IsSet(in.DirectoryDetail.Telephone) {
		record.Telephone = resolve.CleanPhone(in.DirectoryDetail.Telephone)
	}
	if !model.IsSet(record.Email) && model.IsSet(in.DirectoryDetail.Email) {
		record.Email = in.DirectoryDetail.Email
	}
	if !model.IsSet(record.Website) && model.IsSet(in.DirectoryDetail.Website) {
		record.Website = in.DirectoryDetail.Website
	}

	return record
}

// shortDescription takes the text after the first " - " in a SIC line
// ("62012 - Business and domestic software development" → the remainder).
func shortDescription(sicText string) string {
	if !model.IsSet(sicText) {
		return ""
	}
	_, after, found := strings.Cut(sicText, " - ")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}
