package dataset

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Field is a canonical dataset column.
type Field string

// Canonical fields.
const (
	FieldCity       Field = "city"
	FieldState      Field = "state"
	FieldName       Field = "name"
	FieldRating     Field = "rating"
	FieldPopularity Field = "popularity"
)

// Mapping binds a canonical field to the normalized header names that feed it.
type Mapping struct {
	Field    Field
	Headers  []string
	Required bool
}

// Schema is the header-to-field mapping table checked at load time.
type Schema []Mapping

// DefaultSchema maps the columns of the "Top Indian Places to Visit" dataset.
var DefaultSchema = Schema{
	{Field: FieldCity, Headers: []string{"city"}, Required: true},
	{Field: FieldState, Headers: []string{"state"}, Required: true},
	{Field: FieldName, Headers: []string{"name"}, Required: true},
	{Field: FieldRating, Headers: []string{"rating", "google review rating"}, Required: true},
	{Field: FieldPopularity, Headers: []string{"popularity", "number of google review in lakhs"}, Required: true},
}

// NormalizeHeader trims and lowercases a raw column header.
func NormalizeHeader(h string) string {
	// Excel exports often prefix the first header with a UTF-8 BOM.
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

// Columns maps canonical fields to column indices in a row.
type Columns map[Field]int

// Get returns the trimmed cell for field, or "" if the row is short or the
// field is unmapped.
func (c Columns) Get(row []string, f Field) string {
	idx, ok := c[f]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Resolve maps a raw header row onto the schema. Unknown columns are ignored.
// It fails when a required field has no column or when two columns feed the
// same field.
func (s Schema) Resolve(header []string) (Columns, error) {
	lookup := make(map[string]Field)
	for _, m := range s {
		for _, h := range m.Headers {
			lookup[NormalizeHeader(h)] = m.Field
		}
	}

	cols := make(Columns, len(s))
	for i, raw := range header {
		f, ok := lookup[NormalizeHeader(raw)]
		if !ok {
			continue
		}
		if prev, dup := cols[f]; dup {
			return nil, eris.Errorf("dataset: columns %q and %q both map to %q",
				header[prev], raw, f)
		}
		cols[f] = i
	}

	var missing []string
	for _, m := range s {
		if _, ok := cols[m.Field]; !ok && m.Required {
			missing = append(missing, string(m.Field))
		}
	}
	if len(missing) > 0 {
		return nil, eris.Errorf("dataset: missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}
