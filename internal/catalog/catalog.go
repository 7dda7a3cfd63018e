// Package catalog holds the fixed, read-only list of tips.
package catalog

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog is returned by New when no records are supplied.
var ErrEmptyCatalog = errors.New("tip catalog is empty")

// TipRecord is a single tip. Values are copied, never shared.
type TipRecord struct {
	Title    string `json:"title"`
	Advice   string `json:"advice"`
	Snippet  string `json:"snippet"`  // displayed verbatim
	Language string `json:"language"` // highlight hint for Snippet
}

// Catalog is an ordered, immutable sequence of tips with at least one entry.
type Catalog struct {
	records []TipRecord
}

// New builds a catalog from records. The slice is copied so later changes
// by the caller are not visible through the catalog.
func New(records []TipRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}
	owned := make([]TipRecord, len(records))
	copy(owned, records)
	return &Catalog{records: owned}, nil
}

// Size returns the number of tips. Always >= 1.
func (c *Catalog) Size() int {
	return len(c.records)
}

// Get returns the tip at index i. Callers must keep 0 <= i < Size();
// anything else is a programming error and panics.
func (c *Catalog) Get(i int) TipRecord {
	if i < 0 || i >= len(c.records) {
		panic(fmt.Sprintf("catalog: index %d out of range [0, %d)", i, len(c.records)))
	}
	return c.records[i]
}

// Titles returns the tip titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = r.Title
	}
	return out
}
