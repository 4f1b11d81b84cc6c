package shops

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bazaarmind/console/internal/domain/catalog"
	"github.com/bazaarmind/console/internal/domain/schema"
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/bazaarmind/console/internal/domain/shop"
)

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

// MockSessionNotifier records shop lifecycle notifications
type MockSessionNotifier struct {
	mock.Mock
}

func (m *MockSessionNotifier) Add(ctx context.Context, s shop.Shop) {
	m.Called(ctx, s)
}

func (m *MockSessionNotifier) Remove(id uuid.UUID) {
	m.Called(id)
}

func newTestShopService() (*ShopService, *MockShopRepository, *MockProductRepository) {
	repo := new(MockShopRepository)
	productRepo := new(MockProductRepository)
	return NewShopService(repo, productRepo), repo, productRepo
}

func TestShopService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches template for known shop type", func(t *testing.T) {
		svc, repo, _ := newTestShopService()

		repo.On("ExistsByPhone", ctx, "+911234567890").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*shop.Shop")).Return(nil)

		resp, err := svc.Create(ctx, CreateShopRequest{
			Name:     "Sharma Kirana",
			ShopType: "kirana",
			Phone:    "+911234567890",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Sharma Kirana", resp.Name)
		assert.Equal(t, "Kirana / Grocery Store", resp.Template.Label)
		assert.True(t, resp.Template.HasAttributes())
		repo.AssertExpectations(t)
	})

	t.Run("unknown shop type gets generic template", func(t *testing.T) {
		svc, repo, _ := newTestShopService()

		repo.On("ExistsByPhone", ctx, "+911111111111").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*shop.Shop")).Return(nil)

		resp, err := svc.Create(ctx, CreateShopRequest{
			Name:     "Corner Stall",
			ShopType: "fish_market",
			Phone:    "+911111111111",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Fish Market", resp.Template.Label)
		assert.False(t, resp.Template.HasAttributes())
	})

	t.Run("rejects duplicate phone", func(t *testing.T) {
		svc, repo, _ := newTestShopService()

		repo.On("ExistsByPhone", ctx, "+911234567890").Return(true, nil)

		_, err := svc.Create(ctx, CreateShopRequest{
			Name:     "Sharma Kirana",
			ShopType: "kirana",
			Phone:    "+911234567890",
		})

		assert.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestShopService_Update(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestShopService()

	sh, _ := shop.NewShop("Sharma Kirana", "kirana", "+911234567890", schema.TemplateFor("kirana"))
	_ = sh.UpdateContact("Sharma Kirana", "Ravi", "12 MG Road", "Pune", "ravi@example.com", "+911234567890")

	repo.On("FindByID", ctx, sh.ID).Return(sh, nil)
	repo.On("Save", ctx, sh).Return(nil)

	resp, err := svc.Update(ctx, sh.ID, UpdateShopRequest{Name: "Sharma Kirana", OwnerName: "Asha", City: "Mumbai"})

	assert.NoError(t, err)
	assert.Equal(t, "Asha", resp.OwnerName)
	assert.Equal(t, "Mumbai", resp.City)
	// Full replacement: omitted fields are cleared, not preserved.
	assert.Empty(t, resp.Address)
	assert.Empty(t, resp.Email)
}

func TestShopService_Create_NotifiesSession(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestShopService()
	sessions := new(MockSessionNotifier)
	svc.SetSessionNotifier(sessions)

	repo.On("ExistsByPhone", ctx, "+919876543210").Return(false, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*shop.Shop")).Return(nil)
	sessions.On("Add", ctx, mock.AnythingOfType("shop.Shop")).Return()

	resp, err := svc.Create(ctx, CreateShopRequest{
		Name:     "Sharma Kirana",
		ShopType: "kirana",
		Phone:    "+919876543210",
	})

	assert.NoError(t, err)
	sessions.AssertCalled(t, "Add", ctx, mock.MatchedBy(func(s shop.Shop) bool {
		return s.ID == resp.ID && s.Name == "Sharma Kirana"
	}))
}

func TestShopService_Delete_CascadesAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, repo, productRepo := newTestShopService()
	sessions := new(MockSessionNotifier)
	svc.SetSessionNotifier(sessions)

	sh, _ := shop.NewShop("Sharma Kirana", "kirana", "+911234567890", schema.TemplateFor("kirana"))
	repo.On("FindByID", ctx, sh.ID).Return(sh, nil)
	productRepo.On("DeleteByShop", ctx, sh.ID).Return(nil)
	repo.On("Delete", ctx, sh.ID).Return(nil)
	sessions.On("Remove", sh.ID).Return()

	err := svc.Delete(ctx, sh.ID)

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestShopService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, productRepo := newTestShopService()

	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	err := svc.Delete(ctx, id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete")
	productRepo.AssertNotCalled(t, "DeleteByShop")
}

func TestShopService_ShopTypes(t *testing.T) {
	svc, _, _ := newTestShopService()

	resp := svc.ShopTypes()

	assert.NotEmpty(t, resp.Types)
	assert.Contains(t, resp.Categories, "retail")
	for _, info := range resp.Types {
		assert.NotEmpty(t, info.Type)
		assert.NotEmpty(t, info.Label)
	}
}
