package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	sup := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(sup); err != nil {
		return nil, err
	}
	return &dto.PartnerResponse{ID: sup.ID, Name: sup.Name, Address: sup.Address, PhoneNumber: sup.PhoneNumber}, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	sup, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PartnerResponse{ID: sup.ID, Name: sup.Name, Address: sup.Address, PhoneNumber: sup.PhoneNumber}, nil
}

// List lista todos los proveedores.
func (uc *SupplierUseCase) List() ([]*dto.PartnerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(list))
	for _, sup := range list {
		out = append(out, &dto.PartnerResponse{ID: sup.ID, Name: sup.Name, Address: sup.Address, PhoneNumber: sup.PhoneNumber})
	}
	return out, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	sup, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sup == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente.
func (uc *CustomerUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	c := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return &dto.PartnerResponse{ID: c.ID, Name: c.Name, Address: c.Address, PhoneNumber: c.PhoneNumber}, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PartnerResponse{ID: c.ID, Name: c.Name, Address: c.Address, PhoneNumber: c.PhoneNumber}, nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() ([]*dto.PartnerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.PartnerResponse{ID: c.ID, Name: c.Name, Address: c.Address, PhoneNumber: c.PhoneNumber})
	}
	return out, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
