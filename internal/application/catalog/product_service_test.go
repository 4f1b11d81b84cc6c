package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bazaarmind/console/internal/application/forms"
	"github.com/bazaarmind/console/internal/domain/catalog"
	"github.com/bazaarmind/console/internal/domain/schema"
	"github.com/bazaarmind/console/internal/domain/shop"
)

// MockProductRepository is a mock implementation of catalog.Repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByShop(ctx context.Context, shopID uuid.UUID, filter catalog.ListFilter) ([]catalog.Product, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByShop(ctx context.Context, shopID uuid.UUID) error {
	args := m.Called(ctx, shopID)
	return args.Error(0)
}

// MockShopRepository is a mock implementation of shop.Repository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context) ([]shop.Shop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByWhatsAppOrPhone(ctx context.Context, number string) (*shop.Shop, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func kiranaShop(t *testing.T) *shop.Shop {
	t.Helper()
	sh, err := shop.NewShop("Sharma Kirana", "kirana", "+911234567890", schema.TemplateFor("kirana"))
	assert.NoError(t, err)
	return sh
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid attributes pass and threshold defaults from template", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		shopRepo := new(MockShopRepository)
		svc := NewProductService(productRepo, shopRepo)
		sh := kiranaShop(t)

		shopRepo.On("FindByID", ctx, sh.ID).Return(sh, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := svc.Create(ctx, CreateProductRequest{
			ShopID: sh.ID,
			Name:   "Tata Salt",
			Price:  decimal.NewFromInt(28),
			Stock:  100,
			Attributes: map[string]string{
				"expiry_date": "2026-12-31",
				"brand":       "Tata",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, sh.Template.LowStockThreshold, resp.LowStockAlert)
		assert.Equal(t, "Tata", resp.Attributes["brand"])
		assert.Equal(t, "piece", resp.Unit)
	})

	t.Run("missing required attribute is a structured rejection", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		shopRepo := new(MockShopRepository)
		svc := NewProductService(productRepo, shopRepo)
		sh := kiranaShop(t)

		shopRepo.On("FindByID", ctx, sh.ID).Return(sh, nil)

		_, err := svc.Create(ctx, CreateProductRequest{
			ShopID:     sh.ID,
			Name:       "Tata Salt",
			Price:      decimal.NewFromInt(28),
			Attributes: map[string]string{"brand": "Tata"},
		})

		var vErr *forms.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Expiry Date is required", vErr.Fields["expiry_date"])
		productRepo.AssertNotCalled(t, "Save")
	})

	t.Run("explicit low stock alert overrides template threshold", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		shopRepo := new(MockShopRepository)
		svc := NewProductService(productRepo, shopRepo)
		sh := kiranaShop(t)

		shopRepo.On("FindByID", ctx, sh.ID).Return(sh, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		threshold := 25
		resp, err := svc.Create(ctx, CreateProductRequest{
			ShopID:        sh.ID,
			Name:          "Tata Salt",
			Price:         decimal.NewFromInt(28),
			LowStockAlert: &threshold,
			Attributes:    map[string]string{"expiry_date": "2026-12-31"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 25, resp.LowStockAlert)
	})
}

func TestProductService_Update_RevalidatesAttributes(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	shopRepo := new(MockShopRepository)
	svc := NewProductService(productRepo, shopRepo)
	sh := kiranaShop(t)

	p, err := catalog.NewProduct(sh.ID, "Tata Salt", decimal.NewFromInt(28), 100, "packet")
	assert.NoError(t, err)

	productRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	shopRepo.On("FindByID", ctx, sh.ID).Return(sh, nil)

	_, err = svc.Update(ctx, p.ID, UpdateProductRequest{
		Name:       "Tata Salt",
		Price:      decimal.NewFromInt(30),
		Attributes: map[string]string{"brand": "Tata"},
	})

	var vErr *forms.ValidationError
	assert.ErrorAs(t, err, &vErr)
	productRepo.AssertNotCalled(t, "Save")
}

func TestProductService_AdjustStock(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	shopRepo := new(MockShopRepository)
	svc := NewProductService(productRepo, shopRepo)

	p, err := catalog.NewProduct(uuid.New(), "Milk", decimal.NewFromInt(30), 10, "litre")
	assert.NoError(t, err)
	assert.NoError(t, p.SetLowStockAlert(8))

	productRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	productRepo.On("Save", ctx, p).Return(nil)

	resp, err := svc.AdjustStock(ctx, p.ID, -3)

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.PreviousStock)
	assert.Equal(t, 7, resp.Stock)
	assert.True(t, resp.IsLowStock)
}

func TestProductService_CatalogView(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	shopRepo := new(MockShopRepository)
	svc := NewProductService(productRepo, shopRepo)
	shopID := uuid.New()

	milk, err := catalog.NewProduct(shopID, "Milk", decimal.NewFromInt(30), 10, "litre")
	assert.NoError(t, err)

	productRepo.On("FindByShop", ctx, shopID, catalog.ListFilter{ActiveOnly: true}).
		Return([]catalog.Product{*milk}, nil)

	view, err := svc.CatalogView(ctx, shopID)

	assert.NoError(t, err)
	entry, ok := view[milk.ID.String()]
	assert.True(t, ok)
	assert.Equal(t, "Milk", entry.Name)
	assert.True(t, entry.Price.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 10, entry.Stock)
}
