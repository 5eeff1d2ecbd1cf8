package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featurekit/featurekit/internal/clock"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSectionOrderingAndReplace(t *testing.T) {
	s := NewSection("extras")

	s.AddLine("ads-free", &Line{Description: "Ads free", GrossAmount: amount("12.20"), NetAmount: amount("10.00")})
	s.AddLine("api-calls", &Line{Description: "API calls", GrossAmount: amount("6.10"), NetAmount: amount("5.00")})

	// Replacing a line keeps its original position.
	s.AddLine("ads-free", &Line{Description: "Ads free (updated)", GrossAmount: amount("24.40"), NetAmount: amount("20.00")})

	assert.Equal(t, []string{"ads-free", "api-calls"}, s.Names())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Ads free (updated)", s.Line("ads-free").Description)
	assert.Nil(t, s.Line("missing"))
}

func TestSectionTotals(t *testing.T) {
	s := NewSection(DefaultSection)
	s.AddLine("a", &Line{GrossAmount: amount("12.20"), NetAmount: amount("10.00")})
	s.AddLine("b", &Line{GrossAmount: amount("6.10"), NetAmount: amount("5.00")})

	assert.True(t, s.GrossTotal().Equal(amount("18.30")))
	assert.True(t, s.NetTotal().Equal(amount("15.00")))
}

func TestInvoiceSectionsAndTotals(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	inv := New("eur", clk)

	require.NotEmpty(t, inv.ID)
	assert.True(t, strings.HasPrefix(inv.ID, "inv_"))
	assert.True(t, strings.HasPrefix(inv.Number, "INV-"))
	assert.True(t, inv.IssuedOn.Equal(clk.Now()))

	inv.Section(DefaultSection).AddLine("a", &Line{GrossAmount: amount("12.20"), NetAmount: amount("10.00")})
	inv.Section("extras").AddLine("b", &Line{GrossAmount: amount("6.10"), NetAmount: amount("5.00")})

	// Section is lazy but stable: the same name yields the same section.
	assert.Same(t, inv.Section("extras"), inv.Section("extras"))

	sections := inv.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, DefaultSection, sections[0].Name())
	assert.Equal(t, "extras", sections[1].Name())

	assert.True(t, inv.GrossTotal().Equal(amount("18.30")))
	assert.True(t, inv.NetTotal().Equal(amount("15.00")))
}

func TestTextDrawer(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	inv := New("eur", clk)

	qty := 500
	inv.Section(DefaultSection).AddLine("ads-free", &Line{
		Description: "Ads free",
		GrossAmount: amount("12.20"),
		NetAmount:   amount("10.00"),
		TaxName:     "VAT",
		TaxRate:     amount("0.22"),
	})
	inv.Section("extras").AddLine("sms-credits", &Line{
		Description: "SMS credits",
		Quantity:    &qty,
		GrossAmount: amount("6.10"),
		NetAmount:   amount("5.00"),
		TaxName:     "VAT",
		TaxRate:     amount("0.22"),
	})

	out, err := NewTextDrawer().Draw(inv)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, inv.Number)
	assert.Contains(t, text, "2024-06-01")
	assert.Contains(t, text, "Ads free")
	assert.Contains(t, text, "[extras]")
	assert.Contains(t, text, "x500")
	assert.Contains(t, text, "€18.30")
	assert.NotContains(t, text, "[_default]")
}
