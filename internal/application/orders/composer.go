// Package orders contains the order composition logic that turns editable
// catalog references into a priced, auditable submission payload, plus the
// order service that persists submitted orders.
package orders

import (
	"strconv"
	"strings"

	"github.com/bazaarmind/console/internal/domain/order"
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CatalogEntry is the externally supplied price/stock view of one product
type CatalogEntry struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// Catalog maps product id to its current catalog entry
type Catalog map[string]CatalogEntry

// Line is one editable row of the draft. ProductID is empty while
// unselected; Quantity holds the raw input text and is only coerced to an
// integer at total/build time.
type Line struct {
	ProductID string
	Quantity  string
}

// Line fields addressable through UpdateLine
const (
	FieldProductID = "product_id"
	FieldQuantity  = "quantity"
)

// CustomerForm carries the free-text order header fields
type CustomerForm struct {
	CustomerName  string
	CustomerPhone string
	Notes         string
}

// LineItem is a priced snapshot of one valid draft line. The unit price is
// captured at build time so later catalog price changes cannot
// retroactively alter the order.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Submission is the normalized, immutable order payload handed to the
// order service. Building it has no side effects; submitting it and
// refreshing the catalog afterwards are the caller's responsibility.
type Submission struct {
	ShopID        string          `json:"shop_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Notes         string          `json:"notes"`
	Channel       string          `json:"channel"`
	Items         []LineItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// Draft is the mutable, ordered line list being composed
type Draft struct {
	lines []Line
}

// NewDraft creates a draft with one empty line ready for input
func NewDraft() *Draft {
	return &Draft{lines: []Line{{Quantity: "1"}}}
}

// Lines returns a copy of the current lines in order
func (d *Draft) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// AddLine appends an empty line
func (d *Draft) AddLine() {
	d.lines = append(d.lines, Line{Quantity: "1"})
}

// RemoveLine deletes the line at index. The remaining lines keep their
// relative order and are renumbered contiguously.
func (d *Draft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.lines) {
		return shared.NewDomainError("INVALID_LINE", "Line index out of range")
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	return nil
}

// UpdateLine sets one field of the line at index
func (d *Draft) UpdateLine(index int, field, value string) error {
	if index < 0 || index >= len(d.lines) {
		return shared.NewDomainError("INVALID_LINE", "Line index out of range")
	}
	switch field {
	case FieldProductID:
		d.lines[index].ProductID = value
	case FieldQuantity:
		d.lines[index].Quantity = value
	default:
		return shared.NewDomainError("INVALID_FIELD", "Unknown line field: "+field)
	}
	return nil
}

// Total computes the running display total for the draft against the
// catalog. A line whose product is unknown or unselected contributes zero
// and stays in place, so the view can still show an editable row; this
// never fails.
func (d *Draft) Total(catalog Catalog) decimal.Decimal {
	return Total(d.lines, catalog)
}

// Total computes the display total for an arbitrary line sequence
func Total(lines []Line, catalog Catalog) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		entry, ok := catalog[line.ProductID]
		if !ok {
			continue
		}
		qty := parseQuantity(line.Quantity)
		if qty <= 0 {
			continue
		}
		sum = sum.Add(entry.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return sum
}

// Build assembles the order payload for the given shop. Lines without a
// selected product, with a quantity that does not coerce to an integer of
// at least one, or whose product is missing from the catalog are dropped
// individually rather than aborting the order; when no line survives the
// result is a NO_VALID_ITEMS rejection. Unit prices and product names are
// snapshotted from the catalog at this moment.
func (d *Draft) Build(shopID string, catalog Catalog, form CustomerForm) (*Submission, error) {
	return Build(shopID, d.lines, catalog, form)
}

// Build assembles an order payload from an arbitrary line sequence
func Build(shopID string, lines []Line, catalog Catalog, form CustomerForm) (*Submission, error) {
	items := make([]LineItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		if line.ProductID == "" {
			continue
		}
		qty := parseQuantity(line.Quantity)
		if qty < 1 {
			continue
		}
		entry, ok := catalog[line.ProductID]
		if !ok {
			continue
		}

		lineTotal := entry.Price.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, LineItem{
			ProductID:   line.ProductID,
			ProductName: entry.Name,
			Quantity:    qty,
			UnitPrice:   entry.Price,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}

	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_VALID_ITEMS", "no valid items")
	}

	name := strings.TrimSpace(form.CustomerName)
	if name == "" {
		name = order.DefaultCustomerName
	}

	return &Submission{
		ShopID:        shopID,
		CustomerName:  name,
		CustomerPhone: form.CustomerPhone,
		Notes:         form.Notes,
		Channel:       order.ChannelManual,
		Items:         items,
		TotalAmount:   total,
	}, nil
}

// parseQuantity coerces raw quantity text to an integer, 0 when invalid.
// Fractional input like "2.5" truncates to its leading digits, so typing
// a decimal point mid-entry keeps the line eligible.
func parseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	qty, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return qty
}
