// Package model defines the records exchanged between the fetch, extract,
// resolve, and merge stages.
package model

// Sentinel marks a field whose value is deliberately unknown. Every record
// field always holds either a real value or exactly this sentinel, so merge
// precedence reduces to equality checks — there is no "present but blank"
// state to distinguish from "missing".
const Sentinel = "N/A"

// IsSet reports whether v holds a real value rather than the sentinel.
func IsSet(v string) bool {
	return v != "" && v != Sentinel
}

// Source records which sources contributed to a canonical record.
type Source string

const (
	SourceNone          Source = ""
	SourceRegistryOnly  Source = "RegistryOnly"
	SourceDirectoryOnly Source = "DirectoryOnly"
	SourceBoth          Source = "Both"
)

// RegistryResult holds fields extracted from the registry source.
// DetailPath is the relative link to the registry detail page; it is the
// only field that may be empty rather than sentinel, since it is internal
// plumbing and never reaches the canonical record.
type RegistryResult struct {
	CompanyNumber     string `json:"company_number"`
	FullAddress       string `json:"full_address"`
	StreetAddress     string `json:"street_address"`
	City              string `json:"city"`
	Postcode          string `json:"postcode"`
	IncorporationDate string `json:"incorporation_date"`
	Status            string `json:"status"`
	CompanyType       string `json:"company_type"`
	SICText           string `json:"sic_text"`
	DetailPath        string `json:"-"`
}

// NewRegistryResult returns a RegistryResult with every field at sentinel.
func NewRegistryResult() RegistryResult {
	return RegistryResult{
		CompanyNumber:     Sentinel,
		FullAddress:       Sentinel,
		StreetAddress:     Sentinel,
		City:              Sentinel,
		Postcode:          Sentinel,
		IncorporationDate: Sentinel,
		Status:            Sentinel,
		CompanyType:       Sentinel,
		SICText:           Sentinel,
	}
}

// DirectorySearchResult holds fields extracted from the directory search page.
type DirectorySearchResult struct {
	CompanyNumber string `json:"company_number"`
	Status        string `json:"status"`
	Website       string `json:"website"`
}

// NewDirectorySearchResult returns a DirectorySearchResult with every field
// at sentinel.
func NewDirectorySearchResult() DirectorySearchResult {
	return DirectorySearchResult{
		CompanyNumber: Sentinel,
		Status:        Sentinel,
		Website:       Sentinel,
	}
}

// DirectoryDetailResult holds contact fields extracted from the directory
// detail page.
type DirectoryDetailResult struct {
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
}

// NewDirectoryDetailResult returns a DirectoryDetailResult with every field
// at sentinel.
func NewDirectoryDetailResult() DirectoryDetailResult {
	return DirectoryDetailResult{
		Telephone: Sentinel,
		Email:     Sentinel,
		Website:   Sentinel,
	}
}

// CanonicalRecord is the merged output for one business name. It is never
// mutated after the merge engine finishes it.
type CanonicalRecord struct {
	CompanyName       string `json:"company_name"`
	CompanyNumber     string `json:"company_number"`
	StreetAddress     string `json:"street_address"`
	City              string `json:"city"`
	Postcode          string `json:"postcode"`
	IncorporationDate string `json:"incorporation_date"`
	Status            string `json:"status"`
	CompanyType       string `json:"company_type"`
	SICText           string `json:"sic_text"`
	ShortDescription  string `json:"short_description"`
	Sector            string `json:"sector"`
	Telephone         string `json:"telephone"`
	Email             string `json:"email"`
	Website           string `json:"website"`
	Source            Source `json:"source"`
	Notes             string `json:"notes,omitempty"`
	ResearchedAt      string `json:"researched_at"`
}

// NewCanonicalRecord returns a CanonicalRecord for the given business name
// with every data field at sentinel.
func NewCanonicalRecord(name string) CanonicalRecord {
	return CanonicalRecord{
		CompanyName:       name,
		CompanyNumber:     Sentinel,
		StreetAddress:     Sentinel,
		City:              Sentinel,
		Postcode:          Sentinel,
		IncorporationDate: Sentinel,
		Status:            Sentinel,
		CompanyType:       Sentinel,
		SICText:           Sentinel,
		ShortDescription:  Sentinel,
		Sector:            Sentinel,
		Telephone:         Sentinel,
		Email:             Sentinel,
		Website:           Sentinel,
		Source:            SourceNone,
	}
}

// Columns lists the canonical output column names in fixed order.
func Columns() []string {
	return []string{
		"Business Name",
		"Address",
		"City",
		"PostCode",
		"Incorporation Date",
		"Company Status",
		"Company Type",
		"SIC",
		"Short Description",
		"Sector",
		"Telephone",
		"Email",
		"Website",
		"CRN",
		"Source",
		"Notes",
		"Date",
	}
}

// Field returns the record's value for an output column name. Unknown
// column names return the empty string so input columns the pipeline does
// not populate stay blank in the output.
func (r CanonicalRecord) Field(column string) string {
	switch column {
	case "Business Name":
		return r.CompanyName
	case "Address":
		return r.StreetAddress
	case "City":
		return r.City
	case "PostCode":
		return r.Postcode
	case "Incorporation Date":
		return r.IncorporationDate
	case "Company Status":
		return r.Status
	case "Company Type":
		return r.CompanyType
	case "SIC":
		return r.SICText
	case "Short Description":
		return r.ShortDescription
	case "Sector":
		return r.Sector
	case "Telephone":
		return r.Telephone
	case "Email":
		return r.Email
	case "Website":
		return r.Website
	case "CRN":
		return r.CompanyNumber
	case "Source":
		return string(r.Source)
	case "Notes":
		return r.Notes
	case "Date":
		return r.ResearchedAt
	default:
		return ""
	}
}
