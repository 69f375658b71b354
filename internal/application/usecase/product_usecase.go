package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/uom"
)

// ProductUseCase casos de uso para productos: creación, listado e importación
// masiva. Las mutaciones requieren ADMIN.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto (solo ADMIN).
func (uc *ProductUseCase) Create(actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if !uom.IsValid(in.UOM) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		UOM:            in.UOM,
		MinStock:       in.MinStock,
		Price:          in.Price,
		IsFinishedGood: in.IsFinishedGood,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// BulkImport crea los productos del archivo en una sola transacción (solo
// ADMIN): o se importan todas las filas o ninguna. MinStock/Price negativos o
// ausentes entran como cero.
func (uc *ProductUseCase) BulkImport(ctx context.Context, actor entity.Actor, rows []dto.ImportProductRow) (int, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, domain.ErrInvalidInput
	}
	now := time.Now()
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || !uom.IsValid(row.UOM) {
			return 0, domain.ErrInvalidInput
		}
		minStock := row.MinStock
		if minStock.IsNegative() {
			minStock = decimal.Zero
		}
		price := row.Price
		if price.IsNegative() {
			price = decimal.Zero
		}
		products = append(products, &entity.Product{
			ID:             uuid.New().String(),
			Name:           row.Name,
			Description:    row.Description,
			UOM:            row.UOM,
			MinStock:       minStock,
			Price:          price,
			IsFinishedGood: row.IsFinishedGood,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	err := uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.RecipeRepository,
	) error {
		for _, p := range products {
			if err := productRepo.Create(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		UOM:            p.UOM,
		MinStock:       p.MinStock,
		Price:          p.Price,
		IsFinishedGood: p.IsFinishedGood,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
