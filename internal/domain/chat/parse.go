package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Parse methods reported by the remote parser
const (
	ParseMethodRuleBased = "rule_based"
	ParseMethodLLM       = "llm"
)

// ParsedItem is one recognized line from a chat message. MatchedProductID
// is nil when the parser could not map the requested name to a catalog
// product; such items still render in the reply so the customer can
// correct them.
type ParsedItem struct {
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	MatchedProductID   *uuid.UUID      `json:"matched_product_id,omitempty"`
	MatchedProductName string          `json:"matched_product_name,omitempty"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Confidence         float64         `json:"confidence"`
}

// Matched reports whether the item was resolved to a catalog product
func (i ParsedItem) Matched() bool {
	return i.MatchedProductID != nil
}

// ParsedOrder is the structured result of parsing one chat message.
// Parsing happens remotely; this system only renders the result.
type ParsedOrder struct {
	Items       []ParsedItem `json:"items"`
	RawMessage  string       `json:"raw_message"`
	ParseMethod string       `json:"parse_method"`
}

// ParseRequest identifies the message and sender handed to the parser
type ParseRequest struct {
	ShopID        uuid.UUID `json:"shop_id"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerName  string    `json:"customer_name"`
	Message       string    `json:"message"`
}

// Parser is the remote natural-language order parsing service
type Parser interface {
	Parse(ctx context.Context, req ParseRequest) (*ParsedOrder, error)
}
