package service

import (
	"github.com/samber/lo"
)

// Selection is the optional include-only filter for an invoicing pass, e.g.
// the features just added to a subscription. Names can be listed flat or
// appear as keys anywhere inside a nested document, matching both the
// shapes upgrade flows hand over.
type Selection struct {
	names  []string
	nested map[string]any
}

func NewSelection(names ...string) *Selection {
	return &Selection{names: names}
}

// WithNested adds a nested document whose keys, at any depth, also select
// features.
func (s *Selection) WithNested(doc map[string]any) *Selection {
	s.nested = doc
	return s
}

// Includes reports whether the feature name is selected.
func (s *Selection) Includes(name string) bool {
	if lo.Contains(s.names, name) {
		return true
	}
	return keyExistsNested(s.nested, name)
}

func keyExistsNested(doc map[string]any, key string) bool {
	if doc == nil {
		return false
	}
	if _, ok := doc[key]; ok {
		return true
	}
	for _, v := range doc {
		if child, ok := v.(map[string]any); ok {
			if keyExistsNested(child, key) {
				return true
			}
		}
	}
	return false
}
