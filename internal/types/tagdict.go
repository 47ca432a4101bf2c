package types

import "strings"

// TagField is one field/value pair of a Vorbis comment block.
type TagField struct {
	Name  string
	Value string
}

// TagDict is an ordered tag dictionary: the decoded Vorbis comment block
// of a FLAC file. Insertion order is preserved, duplicate field names are
// allowed (a field may carry several values), and names are stored as
// given but compared case-insensitively, matching Vorbis convention.
type TagDict struct {
	// Vendor is the vendor string of the comment block. It is preserved
	// across edits unless explicitly changed.
	Vendor string

	fields []TagField
}

// NewTagDict builds a TagDict from ordered field/value pairs.
func NewTagDict(vendor string, fields []TagField) TagDict {
	d := TagDict{Vendor: vendor}
	d.fields = append(d.fields, fields...)
	return d
}

// Len returns the number of field/value pairs (duplicates counted).
func (d *TagDict) Len() int {
	return len(d.fields)
}

// Fields returns a copy of the ordered field/value pairs.
func (d *TagDict) Fields() []TagField {
	out := make([]TagField, len(d.fields))
	copy(out, d.fields)
	return out
}

// FieldNames returns the ordered list of distinct field names, in order
// of first occurrence, with the spelling of the first occurrence.
func (d *TagDict) FieldNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, f := range d.fields {
		key := strings.ToUpper(f.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, f.Name)
	}
	return names
}

// Get returns all values of the named field, in order. The name match is
// case-insensitive. Returns nil if the field is absent.
func (d *TagDict) Get(name string) []string {
	var values []string
	for _, f := range d.fields {
		if strings.EqualFold(f.Name, name) {
			values = append(values, f.Value)
		}
	}
	return values
}

// First returns the first value of the named field, or "" if absent.
func (d *TagDict) First(name string) string {
	for _, f := range d.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Has reports whether the named field is present.
func (d *TagDict) Has(name string) bool {
	for _, f := range d.fields {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// Append adds a field/value pair at the end, keeping existing pairs.
func (d *TagDict) Append(name, value string) {
	d.fields = append(d.fields, TagField{Name: name, Value: value})
}

// Set replaces every occurrence of the named field with a single pair at
// the position of the first occurrence. If the field is absent the pair
// is appended.
func (d *TagDict) Set(name, value string) {
	replaced := false
	out := d.fields[:0]
	for _, f := range d.fields {
		if !strings.EqualFold(f.Name, name) {
			out = append(out, f)
			continue
		}
		if !replaced {
			out = append(out, TagField{Name: f.Name, Value: value})
			replaced = true
		}
	}
	d.fields = out
	if !replaced {
		d.Append(name, value)
	}
}

// Delete removes every occurrence of the named field.
func (d *TagDict) Delete(name string) {
	out := d.fields[:0]
	for _, f := range d.fields {
		if !strings.EqualFold(f.Name, name) {
			out = append(out, f)
		}
	}
	d.fields = out
}

// Clear removes all field/value pairs. The vendor string is kept.
func (d *TagDict) Clear() {
	d.fields = nil
}

// Clone returns a deep copy of the dictionary.
func (d *TagDict) Clone() TagDict {
	return NewTagDict(d.Vendor, d.fields)
}
