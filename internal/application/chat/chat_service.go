// Package chat implements the conversational ordering flow: a customer
// message is parsed remotely into items, held as a pending session, and
// materialized into a whatsapp-channel order once the customer confirms.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bazaarmind/console/internal/application/orders"
	"github.com/bazaarmind/console/internal/domain/chat"
	"github.com/bazaarmind/console/internal/domain/order"
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/bazaarmind/console/internal/domain/shop"
)

// confirmWords are the phrases, across Hindi, Hinglish and English, that
// turn a pending session into an order.
var confirmWords = []string{
	"confirm", "yes", "ok", "okay", "haan", "ha", "han", "kar do", "place order", "done",
}

// chatCustomerName labels orders placed over chat, where no profile exists
const chatCustomerName = "WA Customer"

// ChatService drives the parse/confirm conversation for one shop
type ChatService struct {
	parser      chat.Parser
	sessionRepo chat.SessionRepository
	shopRepo    shop.Repository
	orderSvc    *orders.OrderService
	logger      *zap.Logger
}

// NewChatService creates a new ChatService
func NewChatService(
	parser chat.Parser,
	sessionRepo chat.SessionRepository,
	shopRepo shop.Repository,
	orderSvc *orders.OrderService,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		parser:      parser,
		sessionRepo: sessionRepo,
		shopRepo:    shopRepo,
		orderSvc:    orderSvc,
		logger:      logger,
	}
}

// Handle processes one incoming chat message: confirmation phrases
// materialize the pending session into an order, anything else is parsed
// into a fresh pending session that replaces the previous one.
func (s *ChatService) Handle(ctx context.Context, msg IncomingMessage) (*Reply, error) {
	sh, err := s.shopRepo.FindByID(ctx, msg.ShopID)
	if err != nil {
		return nil, err
	}
	return s.dispatch(ctx, sh, msg.CustomerPhone, msg.Message)
}

// HandleWebhook processes a provider-delivered message. The destination
// number identifies the shop: its whatsapp number when set, otherwise its
// registration phone.
func (s *ChatService) HandleWebhook(ctx context.Context, msg WebhookMessage) (*Reply, error) {
	sh, err := s.shopRepo.FindByWhatsAppOrPhone(ctx, msg.To)
	if err != nil {
		return nil, err
	}
	return s.dispatch(ctx, sh, msg.From, msg.Body)
}

func (s *ChatService) dispatch(ctx context.Context, sh *shop.Shop, customerPhone, message string) (*Reply, error) {
	if isConfirmation(message) {
		return s.confirm(ctx, sh, customerPhone)
	}
	return s.parse(ctx, sh, customerPhone, message)
}

func (s *ChatService) confirm(ctx context.Context, sh *shop.Shop, customerPhone string) (*Reply, error) {
	session, err := s.sessionRepo.FindPending(ctx, sh.ID, customerPhone)
	if errors.Is(err, shared.ErrNotFound) {
		return &Reply{
			Status:  StatusNoPendingOrder,
			Message: "No pending order found. Send your order first!",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(session.ConfirmedItems) == 0 {
		return &Reply{
			Status:  StatusNoItems,
			Message: "No valid items to order.",
		}, nil
	}

	notes := "Original message: " + session.RawMessage
	resp, err := s.orderSvc.RecordConfirmed(ctx, sh.ID, chatCustomerName, customerPhone, notes, session.ConfirmedItems)
	if err != nil {
		return nil, err
	}

	session.Complete()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("chat order confirmed",
		zap.String("shop_id", sh.ID.String()),
		zap.String("order_id", resp.ID.String()),
		zap.String("total", resp.TotalAmount.String()))

	return &Reply{
		Status:  StatusOrderCreated,
		OrderID: &resp.ID,
		Message: fmt.Sprintf("🎉 *Order Confirmed!*\nThank you! Your order of Rs.%s has been placed.\n\nShop: %s",
			resp.TotalAmount.StringFixed(2), sh.Name),
	}, nil
}

func (s *ChatService) parse(ctx context.Context, sh *shop.Shop, customerPhone, message string) (*Reply, error) {
	parsed, err := s.parser.Parse(ctx, chat.ParseRequest{
		ShopID:        sh.ID,
		CustomerPhone: customerPhone,
		CustomerName:  chatCustomerName,
		Message:       message,
	})
	if err != nil {
		return nil, err
	}

	confirmed := make(order.LineItems, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if !item.Matched() {
			continue
		}
		amount := item.UnitPrice.Mul(decimalQty(item.Quantity))
		confirmed = append(confirmed, order.LineItem{
			ProductID:   *item.MatchedProductID,
			ProductName: item.MatchedProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       amount,
		})
	}

	session := chat.NewSession(sh.ID, customerPhone, parsed, confirmed)
	if err := s.sessionRepo.Replace(ctx, session); err != nil {
		return nil, err
	}

	return &Reply{
		Status:  StatusAwaitingConfirmation,
		Message: BuildConfirmationMessage(parsed, sh.Name),
		Parsed:  parsed,
	}, nil
}

// BuildConfirmationMessage renders the reply for a parse result: one line
// per item, matched or not, the running total of matched lines, and the
// confirmation hint.
func BuildConfirmationMessage(parsed *chat.ParsedOrder, shopName string) string {
	if len(parsed.Items) == 0 {
		return fmt.Sprintf("Hi! We couldn't understand your order. Please try:\n'2 milk 1 bread'\n\nShop: %s", shopName)
	}

	lines := []string{fmt.Sprintf("🛒 *%s* — Order Summary\n", shopName)}
	total := decimalQty(0)
	var missing []string

	for _, item := range parsed.Items {
		if item.Matched() {
			price := item.UnitPrice.Mul(decimalQty(item.Quantity))
			total = total.Add(price)
			lines = append(lines, fmt.Sprintf("✅ %dx %s — Rs.%s", item.Quantity, item.MatchedProductName, price.StringFixed(0)))
		} else {
			missing = append(missing, item.Name)
			lines = append(lines, fmt.Sprintf("❓ %dx %s — *not found*", item.Quantity, item.Name))
		}
	}

	lines = append(lines, fmt.Sprintf("\n💰 *Total: Rs.%s*", total.StringFixed(2)))

	if len(missing) > 0 {
		lines = append(lines, fmt.Sprintf("\n⚠️ Items not found: %s", strings.Join(missing, ", ")))
		lines = append(lines, "Please check spelling or ask the shopkeeper.")
	}

	if len(missing) == 0 {
		lines = append(lines, "\n✅ Reply *CONFIRM* to place your order")
	} else {
		lines = append(lines, "\nReply *CONFIRM* to place available items only")
	}

	return strings.Join(lines, "\n")
}

func decimalQty(quantity int) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity))
}

func isConfirmation(message string) bool {
	lowered := strings.ToLower(message)
	for _, word := range confirmWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
