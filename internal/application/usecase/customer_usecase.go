package usecase

import (
	"context"

	"github.com/jhoicas/spares-manager/internal/application/collection"
	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/internal/application/share"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/pkg/logger"
)

// CustomerUseCase casos de uso CRUD, búsqueda y compartir para clientes.
type CustomerUseCase struct {
	svc   *collection.Service[entity.Customer]
	share *share.Service
	log   *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(svc *collection.Service[entity.Customer], shareSvc *share.Service, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{svc: svc, share: shareSvc, log: log.Named(entity.CustomersKey)}
}

// Load relee la colección desde almacenamiento (inicio de sesión).
func (uc *CustomerUseCase) Load(ctx context.Context) (*dto.CustomerListResponse, error) {
	list, err := uc.svc.Load(ctx)
	if err != nil {
		logFailure(uc.log, "load", uc.svc.Key(), err)
		return nil, err
	}
	return toCustomerList(list, "", len(list)), nil
}

// List filtra el snapshot por query (vacía = todos).
func (uc *CustomerUseCase) List(query string) *dto.CustomerListResponse {
	all := uc.svc.Items()
	return toCustomerList(collection.Search(all, query), query, len(all))
}

// Records copia de las entidades en orden de almacenamiento.
func (uc *CustomerUseCase) Records() []entity.Customer {
	return uc.svc.Items()
}

// GetByID obtiene un cliente por id generado.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	c, err := uc.svc.Get(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Create valida y agrega un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.svc.Add(ctx, customerFromRequest(in))
	if err != nil {
		logFailure(uc.log, "add", uc.svc.Key(), err)
		return nil, err
	}
	uc.log.Info().Str("id", c.ID).Str("companyName", c.CompanyName).Msg("cliente agregado")
	return toCustomerResponse(c), nil
}

// UpdateByName reemplaza todos los clientes con companyName == name.
func (uc *CustomerUseCase) UpdateByName(ctx context.Context, name string, in dto.CustomerRequest) (*dto.MutationResponse, error) {
	n, err := uc.svc.Update(ctx, name, customerFromRequest(in))
	if err != nil {
		logFailure(uc.log, "update", uc.svc.Key(), err)
		return nil, err
	}
	return &dto.MutationResponse{Affected: n}, nil
}

// DeleteByName elimina todos los clientes con companyName == name.
func (uc *CustomerUseCase) DeleteByName(ctx context.Context, name string) (*dto.MutationResponse, error) {
	n, err := uc.svc.Delete(ctx, name)
	if err != nil {
		logFailure(uc.log, "delete", uc.svc.Key(), err)
		return nil, err
	}
	return &dto.MutationResponse{Affected: n}, nil
}

// Update reemplaza el cliente con id.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.svc.UpdateByID(ctx, id, customerFromRequest(in))
	if err != nil {
		logFailure(uc.log, "update", uc.svc.Key(), err)
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete elimina el cliente con id.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.svc.DeleteByID(ctx, id); err != nil {
		logFailure(uc.log, "delete", uc.svc.Key(), err)
		return err
	}
	return nil
}

// FindByName primer cliente cuyo campo de identidad es name (base para el formulario de edición).
func (uc *CustomerUseCase) FindByName(name string) (*dto.CustomerResponse, error) {
	r, err := uc.svc.FindByIdentity(name)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(r), nil
}

// Share mensaje para el cliente con id.
func (uc *CustomerUseCase) Share(id string) (share.Message, error) {
	c, err := uc.svc.Get(id)
	if err != nil {
		return share.Message{}, err
	}
	return uc.share.Customer(c), nil
}

// ShareByName mensaje para el primer cliente con companyName == name.
func (uc *CustomerUseCase) ShareByName(name string) (share.Message, error) {
	c, err := uc.svc.FindByIdentity(name)
	if err != nil {
		return share.Message{}, err
	}
	return uc.share.Customer(c), nil
}

func customerFromRequest(in dto.CustomerRequest) entity.Customer {
	return entity.Customer{
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		City:          in.City,
		MobileNumber:  in.MobileNumber,
	}
}

func toCustomerResponse(c entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		City:          c.City,
		MobileNumber:  c.MobileNumber,
	}
}

func toCustomerList(list []entity.Customer, query string, total int) *dto.CustomerListResponse {
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Meta: dto.ListMeta{Query: query, Total: total}}
}
