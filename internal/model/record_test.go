package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSet(t *testing.T) {
	assert.False(t, IsSet(""))
	assert.False(t, IsSet(Sentinel))
	assert.True(t, IsSet("01234567"))
	assert.True(t, IsSet("n/a")) // sentinel comparison is exact
}

func TestNewCanonicalRecordAllSentinel(t *testing.T) {
	record := NewCanonicalRecord("Acme Widgets Ltd")

	assert.Equal(t, "Acme Widgets Ltd", record.CompanyName)
	for _, column := range Columns() {
		switch column {
		case "Business Name":
			assert.Equal(t, "Acme Widgets Ltd", record.Field(column))
		case "Source", "Notes", "Date":
			assert.Empty(t, record.Field(column))
		default:
			assert.Equal(t, Sentinel, record.Field(column), "column %s", column)
		}
	}
}

func TestFieldUnknownColumn(t *testing.T) {
	record := NewCanonicalRecord("Acme Widgets Ltd")
	assert.Empty(t, record.Field("Account Manager"))
}

func TestColumnsStable(t *testing.T) {
	columns := Columns()
	assert.Equal(t, "Business Name", columns[0])
	assert.Equal(t, "Date", columns[len(columns)-1])
	assert.Len(t, columns, 17)
}
