package tracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to import property records from third-party
// JSON exports. Export tools disagree wildly on their schema, so the import
// format is driven by a mapping of jsonpath selectors instead of a fixed
// struct: the caller describes where each fact lives, the importer extracts
// them.

// ImportMapping describes where property facts live in a JSON export.
type ImportMapping struct {
	// Root selects the list of property objects, e.g. "$.properties".
	Root string
	// Fields maps PropertyFacts JSON field names to a jsonpath evaluated
	// against each property object, e.g. "purchasePrice" -> "$.price".
	Fields map[string]string
}

// DefaultImportMapping maps an export whose objects already use the native
// field names.
func DefaultImportMapping() ImportMapping {
	return ImportMapping{
		Root: "$.properties",
		Fields: map[string]string{
			"name":            "$.name",
			"country":         "$.country",
			"type":            "$.type",
			"purchasePrice":   "$.purchasePrice",
			"currentValue":    "$.currentValue",
			"downPayment":     "$.downPayment",
			"loanAmount":      "$.loanAmount",
			"interestRate":    "$.interestRate",
			"termMonths":      "$.termMonths",
			"monthlyRent":     "$.monthlyRent",
			"monthlyExpenses": "$.monthlyExpenses",
		},
	}
}

// ImportProperties extracts property records from a JSON export using the
// given mapping. Records that fail validation abort the import with their
// position in the error.
func ImportProperties(r io.Reader, mapping ImportMapping) ([]PropertyFacts, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse import data: %w", err)
	}

	jroot, err := jsonpath.Get(mapping.Root, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select properties with %q: %w", mapping.Root, err)
	}
	jlist, ok := jroot.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list of
		// 1 answer, or a single answer: a single object is a list of one.
		jlist = []any{jroot}
	}

	properties := make([]PropertyFacts, 0, len(jlist))
	for i, jprop := range jlist {
		fields := make(map[string]any, len(mapping.Fields))
		for name, path := range mapping.Fields {
			jval, err := jsonpath.Get(path, jprop)
			if err != nil {
				continue // absent fields fall back to engine defaults
			}
			if inner, ok := jval.([]any); ok && len(inner) > 0 {
				jval = inner[0]
			}
			fields[name] = jval
		}

		// Round-trip through JSON to reuse the record's own decoding rules.
		raw, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i+1, err)
		}
		var p PropertyFacts
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("property %d: %w", i+1, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("property %d: %w", i+1, err)
		}
		properties = append(properties, p)
	}
	return properties, nil
}

// ExportProperties writes property records in the import/export format: a
// single JSON object with a "properties" list, matching
// [DefaultImportMapping].
func ExportProperties(w io.Writer, properties []PropertyFacts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"properties": properties})
}
