package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bazaarmind/console/internal/domain/catalog"
	"github.com/bazaarmind/console/internal/domain/order"
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/bazaarmind/console/internal/domain/shop"
)

const defaultListLimit = 50

// OrderService records submitted orders and manages their status lifecycle
type OrderService struct {
	orderRepo   order.Repository
	productRepo catalog.Repository
	shopRepo    shop.Repository
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.Repository,
	productRepo catalog.Repository,
	shopRepo shop.Repository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
		logger:      logger,
	}
}

// Create validates stock for every item, snapshots names and unit prices
// from the catalog, deducts stock, and persists a confirmed order. Prices
// are the server's, regardless of what any client displayed.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, req.ShopID); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}
	found, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	items := make(order.LineItems, 0, len(req.Items))
	products := make([]*catalog.Product, 0, len(req.Items))

	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.ErrNotFound
		}
		if product.ShopID != req.ShopID {
			return nil, shared.NewDomainError("NOT_FOUND", "Product does not belong to this shop")
		}
		if product.Stock < item.Quantity {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Insufficient stock for '%s'. Available: %d", product.Name, product.Stock))
		}

		items = append(items, order.LineItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			Total:       product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
		products = append(products, product)
	}

	ord, err := order.New(req.ShopID, req.CustomerName, req.CustomerPhone, req.Channel, req.Notes, items)
	if err != nil {
		return nil, err
	}

	for i, product := range products {
		if err := product.AdjustStock(-req.Items[i].Quantity); err != nil {
			return nil, err
		}
		if err := s.productRepo.Save(ctx, product); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, ord); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("order_id", ord.ID.String()),
		zap.String("shop_id", ord.ShopID.String()),
		zap.String("channel", ord.Channel),
		zap.String("total", ord.TotalAmount.String()))

	resp := ToOrderResponse(ord)
	return &resp, nil
}

// CreateFromSubmission records an order assembled by the composer. Item
// references are re-resolved and re-priced through Create.
func (s *OrderService) CreateFromSubmission(ctx context.Context, sub *Submission) (*OrderResponse, error) {
	shopID, err := uuid.Parse(sub.ShopID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid shop id")
	}

	req := CreateOrderRequest{
		ShopID:        shopID,
		CustomerName:  sub.CustomerName,
		CustomerPhone: sub.CustomerPhone,
		Notes:         sub.Notes,
		Channel:       sub.Channel,
		Items:         make([]OrderItemRequest, 0, len(sub.Items)),
	}
	for _, item := range sub.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product id: "+item.ProductID)
		}
		req.Items = append(req.Items, OrderItemRequest{ProductID: productID, Quantity: item.Quantity})
	}

	return s.Create(ctx, req)
}

// RecordConfirmed persists an order whose line items were already priced
// upstream, as the chat flow does when a customer confirms a pending
// session. Stock is deducted best effort: items whose product has since
// vanished keep their line but skip the deduction.
func (s *OrderService) RecordConfirmed(ctx context.Context, shopID uuid.UUID, customerName, customerPhone, notes string, items order.LineItems) (*OrderResponse, error) {
	ord, err := order.New(shopID, customerName, customerPhone, order.ChannelWhatsApp, notes, items)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			s.logger.Warn("stock deduction skipped",
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
			continue
		}
		if err := product.AdjustStock(-item.Quantity); err != nil {
			// Oversold via chat: clamp to zero instead of failing the order.
			if setErr := product.SetStock(0); setErr != nil {
				return nil, setErr
			}
		}
		if err := s.productRepo.Save(ctx, product); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, ord); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(ord)
	return &resp, nil
}

// List returns a shop's orders, newest first, capped at the filter limit
// or 50 when unset.
func (s *OrderService) List(ctx context.Context, shopID uuid.UUID, filter OrderListFilter) ([]OrderResponse, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	found, err := s.orderRepo.FindByShop(ctx, shopID, order.ListFilter{
		Status:  filter.Status,
		Channel: filter.Channel,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	responses := make([]OrderResponse, len(found))
	for i := range found {
		responses[i] = ToOrderResponse(&found[i])
	}
	return responses, nil
}

// GetByID returns a single order
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	ord, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(ord)
	return &resp, nil
}

// UpdateStatus replaces the order's status string
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderResponse, error) {
	ord, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ord.SetStatus(status); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, ord); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(ord)
	return &resp, nil
}
