package shops

import (
	"context"

	"github.com/google/uuid"

	"github.com/bazaarmind/console/internal/domain/catalog"
	"github.com/bazaarmind/console/internal/domain/schema"
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/bazaarmind/console/internal/domain/shop"
)

// SessionNotifier receives shop lifecycle events so the active-shop
// selection can follow creates and deletes without a full reload.
type SessionNotifier interface {
	Add(ctx context.Context, s shop.Shop)
	Remove(id uuid.UUID)
}

// ShopService handles shop registration and lifecycle operations
type ShopService struct {
	shopRepo    shop.Repository
	productRepo catalog.Repository
	sessions    SessionNotifier
}

// NewShopService creates a new ShopService
func NewShopService(shopRepo shop.Repository, productRepo catalog.Repository) *ShopService {
	return &ShopService{shopRepo: shopRepo, productRepo: productRepo}
}

// SetSessionNotifier attaches the session manager after construction,
// since the manager itself lists shops through this service.
func (s *ShopService) SetSessionNotifier(n SessionNotifier) {
	s.sessions = n
}

// Create registers a new shop and attaches the schema template for its type.
// The phone number is the registration key; duplicates are rejected.
func (s *ShopService) Create(ctx context.Context, req CreateShopRequest) (*ShopResponse, error) {
	exists, err := s.shopRepo.ExistsByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop with this phone number already registered")
	}

	// The template is resolved once at registration and travels with the
	// shop, so later registry edits never reshape existing shops' forms.
	sh, err := shop.NewShop(req.Name, req.ShopType, req.Phone, schema.TemplateFor(req.ShopType))
	if err != nil {
		return nil, err
	}
	if err := sh.UpdateContact(req.Name, req.OwnerName, req.Address, req.City, req.Email, req.WhatsAppNumber); err != nil {
		return nil, err
	}

	if err := s.shopRepo.Save(ctx, sh); err != nil {
		return nil, err
	}
	if s.sessions != nil {
		s.sessions.Add(ctx, *sh)
	}

	resp := ToShopResponse(sh)
	return &resp, nil
}

// List returns all registered shops
func (s *ShopService) List(ctx context.Context) ([]ShopResponse, error) {
	all, err := s.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ShopResponse, len(all))
	for i := range all {
		responses[i] = ToShopResponse(&all[i])
	}
	return responses, nil
}

// ListShops exposes the raw shop list for the session manager
func (s *ShopService) ListShops(ctx context.Context) ([]shop.Shop, error) {
	return s.shopRepo.FindAll(ctx)
}

// GetByID returns a single shop
func (s *ShopService) GetByID(ctx context.Context, id uuid.UUID) (*ShopResponse, error) {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToShopResponse(sh)
	return &resp, nil
}

// Update replaces the shop's contact details
func (s *ShopService) Update(ctx context.Context, id uuid.UUID, req UpdateShopRequest) (*ShopResponse, error) {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sh.UpdateContact(req.Name, req.OwnerName, req.Address, req.City, req.Email, req.WhatsAppNumber); err != nil {
		return nil, err
	}

	if err := s.shopRepo.Save(ctx, sh); err != nil {
		return nil, err
	}

	resp := ToShopResponse(sh)
	return &resp, nil
}

// Delete removes a shop together with its catalog. The session manager,
// when attached, moves the active selection off the deleted shop.
func (s *ShopService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.shopRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.DeleteByShop(ctx, id); err != nil {
		return err
	}
	if err := s.shopRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.sessions != nil {
		s.sessions.Remove(id)
	}
	return nil
}

// ShopTypes lists the registered shop types for type pickers
func (s *ShopService) ShopTypes() ShopTypesResponse {
	return ShopTypesResponse{
		Types:      schema.AllShopTypes(),
		Categories: schema.Categories(),
	}
}

// TemplateByType returns the schema template for a shop type, falling back
// to the generic template for unknown types.
func (s *ShopService) TemplateByType(shopType string) schema.Template {
	return schema.TemplateFor(shopType)
}
