package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Suggestion is a best-effort reading of an invoice.
type Suggestion struct {
	Date          *time.Time          `json:"date"`
	SupplierName  string              `json:"supplier_name"`
	SupplierID    *string             `json:"supplier_id"`
	InvoiceNumber string              `json:"invoice_number"`
	Currency      string              `json:"currency"`
	Subtotal      decimal.NullDecimal `json:"subtotal"`
	Tax           decimal.NullDecimal `json:"tax"`
	TotalAmount   decimal.NullDecimal `json:"total_amount"`
	LineItems     []LineItem          `json:"line_items"`
}

// LineItem is one suggested line. TotalPrice is recomputed when saved.
type LineItem struct {
	Name       string              `json:"name"`
	Quantity   decimal.Decimal     `json:"quantity"`
	UnitPrice  decimal.Decimal     `json:"unit_price"`
	TotalPrice decimal.NullDecimal `json:"total_price"`
}

// ParseError reports collaborator output that could not be read. Raw is
// returned to the caller so the purchase can be entered by hand.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string { return "unreadable extraction output: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// ParseInvoice parses the model's JSON reply. Markdown code fences around
// the object are tolerated; anything else malformed is an error.
func ParseInvoice(content string) (*Suggestion, error) {
	body := stripFences(content)
	fail := func(format string, args ...any) (*Suggestion, error) {
		return nil, &ParseError{Raw: content, Err: fmt.Errorf(format, args...)}
	}
	if !gjson.Valid(body) {
		return fail("content is not valid JSON")
	}
	doc := gjson.Parse(body)
	if !doc.IsObject() {
		return fail("content is not a JSON object")
	}

	s := &Suggestion{
		SupplierName:  strings.TrimSpace(doc.Get("supplier_name").String()),
		InvoiceNumber: strings.TrimSpace(doc.Get("invoice_number").String()),
		LineItems:     []LineItem{},
	}

	if d := doc.Get("date"); d.Exists() && d.Type != gjson.Null {
		if d.Type != gjson.String {
			return fail("date: expected a string")
		}
		t, err := time.Parse("2006-01-02", strings.TrimSpace(d.String()))
		if err != nil {
			return fail("date: %v", err)
		}
		s.Date = &t
	}

	if c := doc.Get("currency"); c.Exists() && c.Type != gjson.Null {
		cur := strings.ToUpper(strings.TrimSpace(c.String()))
		if !currencyRe.MatchString(cur) {
			return fail("currency: %q is not an ISO 4217 code", c.String())
		}
		s.Currency = cur
	}

	var err error
	if s.Subtotal, err = amount(doc, "subtotal"); err != nil {
		return fail("%v", err)
	}
	if s.Tax, err = amount(doc, "tax"); err != nil {
		return fail("%v", err)
	}
	if s.TotalAmount, err = amount(doc, "total_amount"); err != nil {
		return fail("%v", err)
	}

	items := doc.Get("line_items")
	if items.Exists() && items.Type != gjson.Null && !items.IsArray() {
		return fail("line_items: expected an array")
	}
	for i, li := range items.Array() {
		name := strings.TrimSpace(li.Get("name").String())
		if name == "" {
			return fail("line_items[%d].name: missing", i)
		}
		qty, err := required(li, "quantity")
		if err != nil {
			return fail("line_items[%d].%v", i, err)
		}
		price, err := required(li, "unit_price")
		if err != nil {
			return fail("line_items[%d].%v", i, err)
		}
		total, err := amount(li, "total_price")
		if err != nil {
			return fail("line_items[%d].%v", i, err)
		}
		s.LineItems = append(s.LineItems, LineItem{
			Name:       name,
			Quantity:   qty,
			UnitPrice:  price,
			TotalPrice: total,
		})
	}
	return s, nil
}

// amount reads a non-negative number at path. JSON numbers and numeric
// strings are accepted; null or absent gives an invalid NullDecimal.
func amount(r gjson.Result, path string) (decimal.NullDecimal, error) {
	v := r.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return decimal.NullDecimal{}, nil
	}
	var raw string
	switch v.Type {
	case gjson.Number:
		raw = v.Raw
	case gjson.String:
		raw = strings.TrimSpace(v.String())
	default:
		return decimal.NullDecimal{}, fmt.Errorf("%s: expected a number", path)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%s: %q is not a number", path, raw)
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%s: must not be negative", path)
	}
	return decimal.NewNullDecimal(d), nil
}

func required(r gjson.Result, path string) (decimal.Decimal, error) {
	v, err := amount(r, path)
	if err != nil {
		return decimal.Zero, err
	}
	if !v.Valid {
		return decimal.Zero, fmt.Errorf("%s: missing", path)
	}
	return v.Decimal, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
