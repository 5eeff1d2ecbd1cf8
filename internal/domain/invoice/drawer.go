package invoice

import (
	"fmt"
	"strings"

	"github.com/featurekit/featurekit/internal/types"
)

// Drawer renders an invoice into some document format. Renderers register
// under a name with the invoices manager; the format is theirs to choose.
type Drawer interface {
	Draw(inv *Invoice) ([]byte, error)
}

// TextDrawer renders a plain-text tabular invoice, mostly useful for
// development and email bodies.
type TextDrawer struct{}

func NewTextDrawer() *TextDrawer {
	return &TextDrawer{}
}

func (d *TextDrawer) Draw(inv *Invoice) ([]byte, error) {
	symbol := types.GetCurrencySymbol(inv.Currency)

	var b strings.Builder
	fmt.Fprintf(&b, "Invoice %s (%s)\n", inv.Number, inv.IssuedOn.Format("2006-01-02"))
	for _, section := range inv.Sections() {
		if section.Name() != DefaultSection {
			fmt.Fprintf(&b, "\n[%s]\n", section.Name())
		}
		for _, name := range section.Names() {
			line := section.Line(name)
			qty := ""
			if line.Quantity != nil {
				qty = fmt.Sprintf(" x%d", *line.Quantity)
			}
			fmt.Fprintf(&b, "  %-30s%s  %s%s (net %s%s, %s %s%%)\n",
				line.Description, qty,
				symbol, line.GrossAmount.StringFixed(2),
				symbol, line.NetAmount.StringFixed(2),
				line.TaxName, line.TaxRate.String(),
			)
		}
	}
	fmt.Fprintf(&b, "\nTotal: %s%s (net %s%s)\n",
		symbol, inv.GrossTotal().StringFixed(2),
		symbol, inv.NetTotal().StringFixed(2),
	)
	return []byte(b.String()), nil
}
