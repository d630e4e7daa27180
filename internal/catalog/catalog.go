// Package catalog loads the bundled OAS example files into an immutable,
// version-ordered catalog.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExampleRecord is one example document for one OAS version, in both of its
// serializations.
type ExampleRecord struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"displayName"`
	JSONText    string `json:"json"`
	YAMLText    string `json:"yaml"`
}

// Text returns the record in the named serialization, "json" or "yaml".
func (r ExampleRecord) Text(format string) (string, bool) {
	switch format {
	case "json":
		return r.JSONText, true
	case "yaml":
		return r.YAMLText, true
	}
	return "", false
}

// Version is the ordered example list of a single OAS version.
type Version struct {
	Label    string
	Examples []ExampleRecord
}

// Catalog maps version labels to ordered example lists. Version order is the
// declared order. A Catalog is never mutated after construction; accessors
// hand out copies.
type Catalog struct {
	versions []Version
	index    map[string]int
}

// New builds a Catalog from versions, preserving their order.
func New(versions []Version) (*Catalog, error) {
	c := &Catalog{
		versions: make([]Version, 0, len(versions)),
		index:    make(map[string]int, len(versions)),
	}
	for _, v := range versions {
		if _, dup := c.index[v.Label]; dup {
			return nil, fmt.Errorf("duplicate version %q", v.Label)
		}
		ids := make(map[string]bool, len(v.Examples))
		for _, ex := range v.Examples {
			if ids[ex.Identifier] {
				return nil, fmt.Errorf("version %q: duplicate example %q", v.Label, ex.Identifier)
			}
			ids[ex.Identifier] = true
		}
		c.index[v.Label] = len(c.versions)
		c.versions = append(c.versions, Version{
			Label:    v.Label,
			Examples: append([]ExampleRecord(nil), v.Examples...),
		})
	}
	return c, nil
}

// Labels returns the version labels in declared order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.versions))
	for i, v := range c.versions {
		labels[i] = v.Label
	}
	return labels
}

// Has reports whether label is a version of the catalog.
func (c *Catalog) Has(label string) bool {
	_, ok := c.index[label]
	return ok
}

// Examples returns the ordered examples of a version.
func (c *Catalog) Examples(label string) ([]ExampleRecord, bool) {
	i, ok := c.index[label]
	if !ok {
		return nil, false
	}
	return append([]ExampleRecord(nil), c.versions[i].Examples...), true
}

// Example looks up one record by version and identifier.
func (c *Catalog) Example(label, identifier string) (ExampleRecord, bool) {
	i, ok := c.index[label]
	if !ok {
		return ExampleRecord{}, false
	}
	for _, ex := range c.versions[i].Examples {
		if ex.Identifier == identifier {
			return ex, true
		}
	}
	return ExampleRecord{}, false
}

// First returns the first example of a version.
func (c *Catalog) First(label string) (ExampleRecord, bool) {
	i, ok := c.index[label]
	if !ok || len(c.versions[i].Examples) == 0 {
		return ExampleRecord{}, false
	}
	return c.versions[i].Examples[0], true
}

// Count returns the total number of example records.
func (c *Catalog) Count() int {
	n := 0
	for _, v := range c.versions {
		n += len(v.Examples)
	}
	return n
}

// MarshalJSON encodes the catalog as an object keyed by version label whose
// keys appear in declared order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range c.versions {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(v.Label)
		if err != nil {
			return nil, err
		}
		examples := v.Examples
		if examples == nil {
			examples = []ExampleRecord{}
		}
		list, err := json.Marshal(examples)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(list)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the object written by MarshalJSON, keeping key order.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("catalog: expected object, got %v", tok)
	}

	var versions []Version
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("catalog: expected version key, got %v", tok)
		}
		var examples []ExampleRecord
		if err := dec.Decode(&examples); err != nil {
			return fmt.Errorf("catalog: version %q: %w", label, err)
		}
		versions = append(versions, Version{Label: label, Examples: examples})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	decoded, err := New(versions)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}
