package cii_test

import (
	"bytes"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/internal/cii"
	dec "github.com/rezonia/zugferd/internal/decimal"
	"github.com/rezonia/zugferd/internal/model"
)

// scenarioInvoice is the smallest complete invoice: one line, a seller
// without global id and a buyer without contact.
func scenarioInvoice() *model.InvoiceDescriptor {
	return &model.InvoiceDescriptor{
		InvoiceNo:        "471102",
		InvoiceDate:      model.Date(2013, 3, 5),
		Type:             model.InvoiceTypeInvoice,
		Profile:          model.ProfileBasic,
		Currency:         model.CurrencyEUR,
		ReferenceOrderNo: "AB-312",
		Seller: &model.Party{
			GlobalID: &model.GlobalID{},
			Name:     "Lieferant GmbH",
			Postcode: "80333",
			Street:   "Lieferantenstraße",
			StreetNo: "20",
			City:     "München",
			Country:  "DE",
		},
		Buyer: &model.Party{
			Name:     "Kunden AG Mitte",
			Postcode: "69876",
			Street:   "Kundenstraße 15",
			City:     "Frankfurt",
			Country:  "DE",
		},
		LineTotalAmount:  dec.Present(dec.MustFromString("29.70")),
		GrandTotalAmount: dec.Present(dec.MustFromString("35.34")),
		TradeLineItems: []model.TradeLineItem{
			{
				GlobalID:         model.GlobalID{SchemeID: "0160", ID: "4012345001235"},
				SellerAssignedID: "TB100A4",
				Name:             "Trennblätter A4",
				UnitCode:         model.QuantityH87,
				UnitQuantity:     dec.FromInt(1),
				BilledQuantity:   dec.FromInt(3),
				GrossUnitPrice:   dec.Present(dec.MustFromString("9.90")),
				NetUnitPrice:     dec.Present(dec.MustFromString("9.90")),
				TaxType:          model.TaxTypeVAT,
				TaxCategoryCode:  model.TaxCategoryS,
				TaxPercent:       dec.FromInt(19),
			},
		},
	}
}

// render writes d with a default Writer and parses the result back
func render(t *testing.T, d *model.InvoiceDescriptor) *etree.Document {
	t.Helper()

	var buf bytes.Buffer
	w := cii.NewWriter(cii.WithLogger(zerolog.Nop()))
	require.NoError(t, w.Save(&buf, d))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	require.NotNil(t, doc.Root())
	return doc
}

// text returns the text of the element at path, failing when it is missing
func text(t *testing.T, doc *etree.Document, path string) string {
	t.Helper()
	e := doc.FindElement(path)
	require.NotNil(t, e, "missing element %s", path)
	return e.Text()
}

// childTags lists the tags of e's direct children in document order
func childTags(e *etree.Element) []string {
	var tags []string
	for _, c := range e.ChildElements() {
		tags = append(tags, c.Tag)
	}
	return tags
}

// flatten lists every element as "path[attrs]=text", in document order.
// Insignificant whitespace does not survive, so indented and compact
// documents of the same tree flatten identically.
func flatten(e *etree.Element) []string {
	var lines []string
	var walk func(e *etree.Element, parent string)
	walk = func(e *etree.Element, parent string) {
		path := parent + "/" + e.FullTag()
		attrs := make([]string, 0, len(e.Attr))
		for _, a := range e.Attr {
			attrs = append(attrs, a.FullKey()+"="+a.Value)
		}
		sort.Strings(attrs)
		lines = append(lines, path+"["+strings.Join(attrs, " ")+"]="+strings.TrimSpace(e.Text()))
		for _, c := range e.ChildElements() {
			walk(c, path)
		}
	}
	walk(e, "")
	return lines
}

func loadFixture(t *testing.T, name string) *model.InvoiceDescriptor {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	d, err := model.DecodeDescriptor(f)
	require.NoError(t, err)
	return d
}
