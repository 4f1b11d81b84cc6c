package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sessionapp "github.com/bazaarmind/console/internal/application/session"
	shopsapp "github.com/bazaarmind/console/internal/application/shops"
	"github.com/bazaarmind/console/internal/domain/catalog"
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/bazaarmind/console/internal/domain/shop"
	"github.com/bazaarmind/console/internal/infrastructure/cache"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *mockShopRepo) FindAll(ctx context.Context) ([]shop.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *mockShopRepo) FindByWhatsAppOrPhone(ctx context.Context, number string) (*shop.Shop, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *mockShopRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *mockShopRepo) Save(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockShopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByShop(ctx context.Context, shopID uuid.UUID, filter catalog.ListFilter) ([]catalog.Product, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) DeleteByShop(ctx context.Context, shopID uuid.UUID) error {
	args := m.Called(ctx, shopID)
	return args.Error(0)
}

func setupShopRouter(repo shop.Repository) *gin.Engine {
	engine := gin.New()
	h := NewShopHandler(shopsapp.NewShopService(repo, new(mockProductRepo)))
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine
}

func TestShopHandlerCreate(t *testing.T) {
	repo := new(mockShopRepo)
	repo.On("ExistsByPhone", mock.Anything, "9876543210").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*shop.Shop")).Return(nil)

	engine := setupShopRouter(repo)

	body, _ := json.Marshal(gin.H{
		"name":      "Sharma Kirana",
		"shop_type": "kirana",
		"phone":     "9876543210",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sharma Kirana", data["name"])
	assert.Equal(t, "kirana", data["shop_type"])
	repo.AssertExpectations(t)
}

// setupShopRouterWithSession hosts the shop handler next to a live session
// manager, the way the server wires them.
func setupShopRouterWithSession(t *testing.T, repo *mockShopRepo, productRepo *mockProductRepo, shops []shop.Shop) (*gin.Engine, *sessionapp.Manager) {
	t.Helper()
	repo.On("FindAll", mock.Anything).Return(shops, nil)

	svc := shopsapp.NewShopService(repo, productRepo)
	manager := sessionapp.NewManager(svc, cache.NewInMemorySelectionStore(), zap.NewNop())
	require.NoError(t, manager.Load(context.Background()))
	svc.SetSessionNotifier(manager)

	engine := gin.New()
	h := NewShopHandler(svc)
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine, manager
}

func TestShopHandlerCreateActivatesNewShop(t *testing.T) {
	repo := new(mockShopRepo)
	repo.On("ExistsByPhone", mock.Anything, "9876543210").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*shop.Shop")).Return(nil)

	engine, manager := setupShopRouterWithSession(t, repo, new(mockProductRepo), []shop.Shop{sessionShop(t, "Old Shop")})
	require.NotNil(t, manager.Current())
	require.Equal(t, "Old Shop", manager.Current().Name)

	body, _ := json.Marshal(gin.H{
		"name":      "Sharma Kirana",
		"shop_type": "kirana",
		"phone":     "9876543210",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, manager.Current())
	assert.Equal(t, "Sharma Kirana", manager.Current().Name)
	assert.Len(t, manager.Shops(), 2)
}

func TestShopHandlerDeleteCurrentSelectsSuccessor(t *testing.T) {
	first := sessionShop(t, "One")
	second := sessionShop(t, "Two")
	repo := new(mockShopRepo)
	productRepo := new(mockProductRepo)
	repo.On("FindByID", mock.Anything, first.ID).Return(&first, nil)
	productRepo.On("DeleteByShop", mock.Anything, first.ID).Return(nil)
	repo.On("Delete", mock.Anything, first.ID).Return(nil)

	engine, manager := setupShopRouterWithSession(t, repo, productRepo, []shop.Shop{first, second})
	require.Equal(t, "One", manager.Current().Name)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/shops/"+first.ID.String(), nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, manager.Current())
	assert.Equal(t, "Two", manager.Current().Name)
	productRepo.AssertExpectations(t)
}

func TestShopHandlerCreateDuplicatePhone(t *testing.T) {
	repo := new(mockShopRepo)
	repo.On("ExistsByPhone", mock.Anything, "9876543210").Return(true, nil)

	engine := setupShopRouter(repo)

	body, _ := json.Marshal(gin.H{
		"name":      "Sharma Kirana",
		"shop_type": "kirana",
		"phone":     "9876543210",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestShopHandlerCreateMissingFields(t *testing.T) {
	repo := new(mockShopRepo)
	engine := setupShopRouter(repo)

	body, _ := json.Marshal(gin.H{"name": "No Type Or Phone"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopHandlerGetByIDNotFound(t *testing.T) {
	repo := new(mockShopRepo)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	engine := setupShopRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/"+id.String(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShopHandlerGetByIDMalformedID(t *testing.T) {
	repo := new(mockShopRepo)
	engine := setupShopRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/not-a-uuid", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestShopHandlerShopTypes(t *testing.T) {
	engine := setupShopRouter(new(mockShopRepo))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shop-types", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	types, ok := data["types"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, types)
}

func TestShopHandlerTemplateUnknownTypeFallsBack(t *testing.T) {
	engine := setupShopRouter(new(mockShopRepo))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shop-types/fish_market/template", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}
