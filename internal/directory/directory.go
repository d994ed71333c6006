package directory

import (
	"maps"
	"sync"
)

// Record is one user entry. Records are deliberately schemaless: fields
// are unvalidated, all of them optional, and the seed data includes one
// legacy record with an arbitrary shape and no email at all. Lookups must
// therefore treat a missing email as matching nothing.
type Record map[string]any

// Email returns the record's email field, or "" when absent or not a
// string.
func (r Record) Email() string {
	email, _ := r["email"].(string)
	return email
}

func (r Record) matches(email string) bool {
	own := r.Email()
	return own != "" && own == email
}

// Directory is the in-memory user record store. There is no identity
// constraint: multiple records may share an email, and lookups by email
// return all of them.
type Directory struct {
	mu      sync.RWMutex
	records []Record
}

// New returns a directory seeded with the stock record set.
func New() *Directory {
	return &Directory{
		records: []Record{
			{
				"firstName": "John",
				"lastName":  "wick",
				"email":     "johnwick@gamil.com",
				"DOB":       "22-01-1990",
			},
			{
				"firstName": "John",
				"lastName":  "smith",
				"email":     "johnsmith@gamil.com",
				"DOB":       "21-07-1983",
			},
			{
				"firstName": "Joyal",
				"lastName":  "white",
				"email":     "joyalwhite@gamil.com",
				"DOB":       "21-03-1989",
			},
			{
				"firstName": "Jon",
				"lastName":  "Lovato",
				"email":     "jonlovato@theworld.com",
				"DOB":       "10/10/1995",
			},
			// Legacy malformed entry, kept as-is: no email, nested shape.
			{
				"user": map[string]any{
					"name": "abc",
					"id":   1,
				},
			},
		},
	}
}

// List returns a snapshot of all records in insertion order. Records are
// cloned so later updates never touch a map a caller is still reading.
func (d *Directory) List() []Record {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Record, len(d.records))
	for i, r := range d.records {
		out[i] = maps.Clone(r)
	}
	return out
}

// FindByEmail returns every record whose email matches exactly. The
// result is never nil, so an empty match set serializes as []; records
// are cloned, as in List.
func (d *Directory) FindByEmail(email string) []Record {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Record, 0)
	for _, r := range d.records {
		if r.matches(email) {
			out = append(out, maps.Clone(r))
		}
	}
	return out
}

// Add appends a record.
func (d *Directory) Add(r Record) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.records = append(d.records, r)
}

// UpdateByEmail applies fn to the first record matching email, removes
// every matching record, and re-appends the updated one at the end.
// Reports whether any record matched.
func (d *Directory) UpdateByEmail(email string, fn func(Record)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	var updated Record
	for _, r := range d.records {
		if r.matches(email) {
			updated = r
			break
		}
	}
	if updated == nil {
		return false
	}

	fn(updated)

	kept := d.records[:0]
	for _, r := range d.records {
		if !r.matches(email) {
			kept = append(kept, r)
		}
	}
	d.records = append(kept, updated)
	return true
}

// DeleteByEmail removes every record matching email. Deleting an email
// with no matches is a no-op.
func (d *Directory) DeleteByEmail(email string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.records[:0]
	for _, r := range d.records {
		if !r.matches(email) {
			kept = append(kept, r)
		}
	}
	d.records = kept
}
