// Package invoice holds the invoice document data built per invoicing pass:
// an invoice owns named sections, a section owns lines keyed and ordered by
// feature name.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/featurekit/featurekit/internal/clock"
	"github.com/featurekit/featurekit/internal/types"
)

// DefaultSection is where PopulateInvoice writes when no section is named.
const DefaultSection = "_default"

// Line is one billable feature on an invoice.
type Line struct {
	Description string          `json:"description"`
	Quantity    *int            `json:"quantity,omitempty"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	TaxName     string          `json:"tax_name"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// Section is an insertion-ordered mapping of feature name → line.
type Section struct {
	name  string
	order []string
	lines map[string]*Line
}

func NewSection(name string) *Section {
	return &Section{name: name, lines: make(map[string]*Line)}
}

func (s *Section) Name() string {
	return s.name
}

// AddLine inserts or replaces the line for a feature. A replaced line keeps
// its original position.
func (s *Section) AddLine(featureName string, line *Line) {
	if _, exists := s.lines[featureName]; !exists {
		s.order = append(s.order, featureName)
	}
	s.lines[featureName] = line
}

// Line returns the line for a feature, nil when absent.
func (s *Section) Line(featureName string) *Line {
	return s.lines[featureName]
}

// Names returns the feature names in insertion order.
func (s *Section) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Section) Len() int {
	return len(s.order)
}

// Lines returns the lines in insertion order.
func (s *Section) Lines() []*Line {
	out := make([]*Line, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.lines[name])
	}
	return out
}

// GrossTotal sums the gross amounts of all lines.
func (s *Section) GrossTotal() decimal.Decimal {
	total := decimal.Zero
	for _, name := range s.order {
		total = total.Add(s.lines[name].GrossAmount)
	}
	return total
}

// NetTotal sums the net amounts of all lines.
func (s *Section) NetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, name := range s.order {
		total = total.Add(s.lines[name].NetAmount)
	}
	return total
}

// Invoice is assembled fresh per invoicing pass and not persisted here.
type Invoice struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Currency string    `json:"currency"`
	IssuedOn time.Time `json:"issued_on"`

	sectionOrder []string
	sections     map[string]*Section
}

func New(currency string, clk clock.Clock) *Invoice {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Invoice{
		ID:       types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		Number:   types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE),
		Currency: currency,
		IssuedOn: clk.Now(),
		sections: make(map[string]*Section),
	}
}

// Section returns the named section, creating it on first use.
func (i *Invoice) Section(name string) *Section {
	if s, ok := i.sections[name]; ok {
		return s
	}
	s := NewSection(name)
	i.sectionOrder = append(i.sectionOrder, name)
	i.sections[name] = s
	return s
}

// Sections returns the sections in creation order.
func (i *Invoice) Sections() []*Section {
	out := make([]*Section, 0, len(i.sectionOrder))
	for _, name := range i.sectionOrder {
		out = append(out, i.sections[name])
	}
	return out
}

// GrossTotal sums the gross totals of all sections.
func (i *Invoice) GrossTotal() decimal.Decimal {
	total := decimal.Zero
	for _, name := range i.sectionOrder {
		total = total.Add(i.sections[name].GrossTotal())
	}
	return total
}

// NetTotal sums the net totals of all sections.
func (i *Invoice) NetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, name := range i.sectionOrder {
		total = total.Add(i.sections[name].NetTotal())
	}
	return total
}
