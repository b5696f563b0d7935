package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSupplierName = errors.New("supplier name is required")
	ErrInvalidSupplierTax  = errors.New("supplier tax id is required")
)

type ISupplierUseCase interface {
	Register(ctx context.Context, actorID string, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
}

// SupplierUseCase maintains the third-party company catalog. Only the
// supply team registers suppliers.

type SupplierUseCase struct {
	suppliers interfaces.ISupplierRepository
	directory interfaces.IDirectory
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(suppliers interfaces.ISupplierRepository, directory interfaces.IDirectory) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, directory: directory}
}

func (u *SupplierUseCase) Register(ctx context.Context, actorID string, s entities.Supplier) (entities.Supplier, error) {
	actor, err := u.directory.GetUser(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return entities.Supplier{}, err
	}
	if actor.ID == "" || actor.Role != entities.RoleSupply {
		return entities.Supplier{}, ErrUnauthorized
	}

	s.Name = strings.TrimSpace(s.Name)
	s.TaxID = strings.TrimSpace(s.TaxID)
	if s.Name == "" {
		return entities.Supplier{}, ErrInvalidSupplierName
	}
	if s.TaxID == "" {
		return entities.Supplier{}, ErrInvalidSupplierTax
	}

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	created, err := u.suppliers.Create(ctx, s)
	if err != nil {
		return entities.Supplier{}, err
	}
	log.Printf("[supplier][usecase] registered supplier_id=%s umbrella=%t", created.ID, created.Umbrella)
	return created, nil
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, ErrUnknownSupplier
	}
	s, err := u.suppliers.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == "" {
		return entities.Supplier{}, ErrUnknownSupplier
	}
	return s, nil
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.suppliers.List(ctx)
}
