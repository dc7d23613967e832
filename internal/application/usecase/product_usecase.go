package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/spares-manager/internal/application/collection"
	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/internal/application/share"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/pkg/logger"
)

// ProductUseCase casos de uso CRUD, búsqueda y compartir para productos.
type ProductUseCase struct {
	svc   *collection.Service[entity.Product]
	share *share.Service
	log   *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(svc *collection.Service[entity.Product], shareSvc *share.Service, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{svc: svc, share: shareSvc, log: log.Named(entity.ProductsKey)}
}

// Load relee la colección desde almacenamiento.
func (uc *ProductUseCase) Load(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.svc.Load(ctx)
	if err != nil {
		logFailure(uc.log, "load", uc.svc.Key(), err)
		return nil, err
	}
	return toProductList(list, "", len(list)), nil
}

// List filtra el snapshot por query sobre productName y productType.
func (uc *ProductUseCase) List(query string) *dto.ProductListResponse {
	all := uc.svc.Items()
	return toProductList(collection.Search(all, query), query, len(all))
}

// Records copia de las entidades en orden de almacenamiento.
func (uc *ProductUseCase) Records() []entity.Product {
	return uc.svc.Items()
}

// GetByID obtiene un producto por id generado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.svc.Get(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Create valida y agrega un producto. Los nombres repetidos se permiten.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p, err = uc.svc.Add(ctx, p)
	if err != nil {
		logFailure(uc.log, "add", uc.svc.Key(), err)
		return nil, err
	}
	uc.log.Info().Str("id", p.ID).Str("productCode", p.ProductCode).Msg("producto agregado")
	return toProductResponse(p), nil
}

// UpdateByName reemplaza todos los productos con productName == name.
func (uc *ProductUseCase) UpdateByName(ctx context.Context, name string, in dto.ProductRequest) (*dto.MutationResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	n, err := uc.svc.Update(ctx, name, p)
	if err != nil {
		logFailure(uc.log, "update", uc.svc.Key(), err)
		return nil, err
	}
	return &dto.MutationResponse{Affected: n}, nil
}

// DeleteByName elimina todos los productos con productName == name.
func (uc *ProductUseCase) DeleteByName(ctx context.Context, name string) (*dto.MutationResponse, error) {
	n, err := uc.svc.Delete(ctx, name)
	if err != nil {
		logFailure(uc.log, "delete", uc.svc.Key(), err)
		return nil, err
	}
	return &dto.MutationResponse{Affected: n}, nil
}

// Update reemplaza el producto con id.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p, err = uc.svc.UpdateByID(ctx, id, p)
	if err != nil {
		logFailure(uc.log, "update", uc.svc.Key(), err)
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina el producto con id.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.svc.DeleteByID(ctx, id); err != nil {
		logFailure(uc.log, "delete", uc.svc.Key(), err)
		return err
	}
	return nil
}

// FindByName primer producto cuyo campo de identidad es name (base para el formulario de edición).
func (uc *ProductUseCase) FindByName(name string) (*dto.ProductResponse, error) {
	r, err := uc.svc.FindByIdentity(name)
	if err != nil {
		return nil, err
	}
	return toProductResponse(r), nil
}

// Share mensaje para el producto con id.
func (uc *ProductUseCase) Share(id string) (share.Message, error) {
	p, err := uc.svc.Get(id)
	if err != nil {
		return share.Message{}, err
	}
	return uc.share.Product(p), nil
}

// ShareByName mensaje para el primer producto con productName == name.
func (uc *ProductUseCase) ShareByName(name string) (share.Message, error) {
	p, err := uc.svc.FindByIdentity(name)
	if err != nil {
		return share.Message{}, err
	}
	return uc.share.Product(p), nil
}

// productFromRequest compone productCode desde prefijo+número cuando no viene armado.
func productFromRequest(in dto.ProductRequest) (entity.Product, error) {
	code := strings.TrimSpace(in.ProductCode)
	if code == "" && strings.TrimSpace(in.CodeNumber) != "" {
		composed, err := entity.ComposeProductCode(in.CodePrefix, in.CodeNumber)
		if err != nil {
			return entity.Product{}, err
		}
		code = composed
	}
	return entity.Product{
		ProductType:  in.ProductType,
		ProductName:  in.ProductName,
		ProductCode:  code,
		ProductImage: in.ProductImage,
		Description:  in.Description,
		Price:        strings.TrimSpace(in.Price),
	}, nil
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		ProductType:  p.ProductType,
		ProductName:  p.ProductName,
		ProductCode:  p.ProductCode,
		ProductImage: p.ProductImage,
		Description:  p.Description,
		Price:        p.Price,
	}
}

func toProductList(list []entity.Product, query string, total int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Meta: dto.ListMeta{Query: query, Total: total}}
}
