package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// LabelSet is a set of free-form string tags. Order is irrelevant;
// duplicates and empty strings are discarded. It is stored as a JSON array
// and only serialized at the storage boundary.
type LabelSet []string

// NewLabelSet builds a normalized label set from raw tags.
func NewLabelSet(tags ...string) LabelSet {
	seen := make(map[string]struct{}, len(tags))
	var out LabelSet
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the set contains the given tag.
func (s LabelSet) Has(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

// Equal reports whether two sets contain the same tags.
func (s LabelSet) Equal(other LabelSet) bool {
	if len(s) != len(other) {
		return false
	}
	for _, t := range other {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer, serializing the set as a JSON array.
func (s LabelSet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner, reading a JSON array back into a set.
func (s *LabelSet) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("labels: cannot scan %T", src)
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return err
	}
	*s = NewLabelSet(tags...)
	return nil
}
