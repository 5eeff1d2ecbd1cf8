package feature

import (
	ierr "github.com/featurekit/featurekit/internal/errors"
)

// Collection is an insertion-ordered, name-unique set of features. Invoice
// lines are emitted in feature order, so the order a plan document declares
// its features in is preserved.
type Collection struct {
	names []string
	items map[string]Feature
}

func NewCollection() *Collection {
	return &Collection{items: make(map[string]Feature)}
}

// NewCollectionFromDetails hydrates a collection through the factory from an
// ordered name list and a name → details map, the shape configuration and
// persistence documents carry.
func NewCollectionFromDetails(factory *Factory, names []string, detailsByName map[string]Details) (*Collection, error) {
	c := NewCollection()
	for _, name := range names {
		details, ok := detailsByName[name]
		if !ok {
			return nil, ierr.NewError("missing feature details").
				WithHintf("No details for feature %q", name).
				Mark(ierr.ErrNotFound)
		}
		f, err := factory.CreateFromDetails(name, details)
		if err != nil {
			return nil, err
		}
		if err := c.Add(f); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a feature, rejecting duplicate names.
func (c *Collection) Add(f Feature) error {
	if _, exists := c.items[f.Name()]; exists {
		return ierr.NewError("duplicate feature name").
			WithHintf("Feature %q is already in the collection", f.Name()).
			Mark(ierr.ErrAlreadyExists)
	}
	c.names = append(c.names, f.Name())
	c.items[f.Name()] = f
	return nil
}

// Get returns the named feature, or ErrNotFound.
func (c *Collection) Get(name string) (Feature, error) {
	f, ok := c.items[name]
	if !ok {
		return nil, ierr.NewError("feature not found").
			WithHintf("No feature named %q", name).
			Mark(ierr.ErrNotFound)
	}
	return f, nil
}

func (c *Collection) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Names returns the feature names in insertion order.
func (c *Collection) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Collection) Len() int {
	return len(c.names)
}

// All returns the features in insertion order.
func (c *Collection) All() []Feature {
	out := make([]Feature, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[name])
	}
	return out
}

// ToDetails serializes every subscribed feature in the collection back to
// its details bag, keyed by name. Configured features are skipped: they are
// never persisted through this boundary.
func (c *Collection) ToDetails() map[string]Details {
	out := make(map[string]Details, len(c.names))
	for _, name := range c.names {
		if s, ok := c.items[name].(Subscribed); ok {
			out[name] = s.ToDetails()
		}
	}
	return out
}
