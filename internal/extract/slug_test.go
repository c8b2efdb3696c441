package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/registry-enrich/internal/model"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Acme Widgets Ltd", "acme-widgets-ltd"},
		{"ampersand", "Smith & Sons Ltd", "smith-and-sons-ltd"},
		{"punctuation stripped", "Smith & Sons (Builders) Ltd.", "smith-and-sons-builders-ltd"},
		{"extra whitespace", "  Double   Space  Co  ", "double-space-co"},
		{"already lowercase", "plain-name", "plain-name"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestDirectoryDetailURL(t *testing.T) {
	url := DirectoryDetailURL("https://www.endole.co.uk/company", "09999999", "Acme & Co")
	assert.Equal(t, "https://www.endole.co.uk/company/09999999-acme-and-co", url)
}

func TestCompanyNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crumbtrail", "01234567 - Incorporated on 12 March 2001", "01234567"},
		{"scottish prefix", "Company No: SC123456", "SC123456"},
		{"lowercase prefix uppercased", "ni012345 registered", "NI012345"},
		{"no number", "no registration details here", model.Sentinel},
		{"empty", "", model.Sentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompanyNumber(tt.in))
		})
	}
}
