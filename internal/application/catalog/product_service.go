package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/bazaarmind/console/internal/application/forms"
	"github.com/bazaarmind/console/internal/application/orders"
	"github.com/bazaarmind/console/internal/domain/catalog"
	"github.com/bazaarmind/console/internal/domain/shop"
)

// ProductService handles catalog operations for a shop. Dynamic attributes
// are validated against the owning shop's template on every write.
type ProductService struct {
	productRepo catalog.Repository
	shopRepo    shop.Repository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.Repository, shopRepo shop.Repository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

// Create adds a product to the shop's catalog. The low stock alert defaults
// to the shop template's threshold when the request omits it.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	sh, err := s.shopRepo.FindByID(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}

	attrs := catalog.AttributeMap(req.Attributes)
	if fieldErrs := forms.Validate(attrs, sh.Template); len(fieldErrs) > 0 {
		return nil, forms.NewValidationError(fieldErrs)
	}

	product, err := catalog.NewProduct(req.ShopID, req.Name, req.Price, req.Stock, req.Unit)
	if err != nil {
		return nil, err
	}
	product.SetAttributes(attrs)
	product.Description = req.Description

	threshold := sh.Template.LowStockThreshold
	if req.LowStockAlert != nil {
		threshold = *req.LowStockAlert
	}
	if err := product.SetLowStockAlert(threshold); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns the shop's products, optionally narrowed to active or
// low-stock items.
func (s *ProductService) List(ctx context.Context, shopID uuid.UUID, filter ProductListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindByShop(ctx, shopID, catalog.ListFilter{
		ActiveOnly: filter.ActiveOnly,
		LowStock:   filter.LowStock,
	})
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update replaces the product's fields, re-validating attributes against
// the owning shop's template.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sh, err := s.shopRepo.FindByID(ctx, product.ShopID)
	if err != nil {
		return nil, err
	}

	attrs := catalog.AttributeMap(req.Attributes)
	if fieldErrs := forms.Validate(attrs, sh.Template); len(fieldErrs) > 0 {
		return nil, forms.NewValidationError(fieldErrs)
	}

	if err := product.Update(req.Name, req.Price, req.Unit, req.Description); err != nil {
		return nil, err
	}
	product.SetAttributes(attrs)
	if req.LowStockAlert != nil {
		if err := product.SetLowStockAlert(*req.LowStockAlert); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		product.SetActive(*req.Active)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// AdjustStock applies a relative stock change
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*StockAdjustmentResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := product.Stock
	if err := product.AdjustStock(delta); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return &StockAdjustmentResponse{
		ProductID:     product.ID,
		PreviousStock: previous,
		Stock:         product.Stock,
		IsLowStock:    product.IsLowStock(),
	}, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// CatalogView projects a shop's active products into the order composer's
// catalog map, keyed by product id.
func (s *ProductService) CatalogView(ctx context.Context, shopID uuid.UUID) (orders.Catalog, error) {
	products, err := s.productRepo.FindByShop(ctx, shopID, catalog.ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	view := make(orders.Catalog, len(products))
	for i := range products {
		p := &products[i]
		view[p.ID.String()] = orders.CatalogEntry{
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		}
	}
	return view, nil
}
