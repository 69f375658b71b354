package recipe

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

// UseCase casos de uso CRUD para recetas. Receta, ingredientes y producto
// terminado viven como una sola unidad: crear una receta crea (o marca) el
// producto terminado y eliminarla elimina también producto e ingredientes,
// todo dentro de una transacción. Solo ADMIN puede mutar recetas.
type UseCase struct {
	txRunner    inventory.TxRunner
	recipeRepo  repository.RecipeRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner inventory.TxRunner, recipeRepo repository.RecipeRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, recipeRepo: recipeRepo, productRepo: productRepo}
}

// List devuelve todas las recetas con producto e ingredientes expandidos.
func (uc *UseCase) List(ctx context.Context) ([]dto.RecipeResponse, error) {
	recipes, err := uc.recipeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		resp, err := uc.toResponse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Create crea una receta: con ProductName crea un producto terminado nuevo
// (UNIDAD, minStock 0, precio 0); con ProductID marca el producto existente
// como terminado. Las cantidades de ingredientes digitadas en otra unidad se
// convierten a la unidad propia del ingrediente antes de persistir.
func (uc *UseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if (in.ProductName == "") == (in.ProductID == "") {
		return nil, domain.ErrInvalidInput
	}
	ingredients, err := uc.buildIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &entity.Recipe{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		productRepo repository.ProductRepository,
		recipeRepo repository.RecipeRepository,
	) error {
		var product *entity.Product
		if in.ProductName != "" {
			product = &entity.Product{
				ID:             uuid.New().String(),
				Name:           in.ProductName,
				UOM:            uom.Unidad,
				MinStock:       decimal.Zero,
				Price:          decimal.Zero,
				IsFinishedGood: true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := productRepo.Create(product); err != nil {
				return err
			}
		} else {
			var err error
			product, err = productRepo.GetByID(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			existing, err := recipeRepo.GetByProductID(product.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrDuplicate
			}
			if !product.IsFinishedGood {
				product.IsFinishedGood = true
				product.UpdatedAt = now
				if err := productRepo.Update(product); err != nil {
					return err
				}
			}
		}

		recipe.ProductID = product.ID
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		recipe.Ingredients = ingredients
		return recipeRepo.Create(recipe)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(recipe)
}

// Update reemplaza el conjunto de ingredientes y opcionalmente renombra el
// producto terminado, en una sola transacción.
func (uc *UseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	ingredients, err := uc.buildIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}
	for i := range ingredients {
		ingredients[i].RecipeID = recipe.ID
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		productRepo repository.ProductRepository,
		recipeRepo repository.RecipeRepository,
	) error {
		if in.ProductName != "" {
			product, err := productRepo.GetByID(recipe.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Name != in.ProductName {
				product.Name = in.ProductName
				product.UpdatedAt = now
				if err := productRepo.Update(product); err != nil {
					return err
				}
			}
		}
		return recipeRepo.ReplaceIngredients(recipe.ID, ingredients)
	})
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients
	recipe.UpdatedAt = now
	return uc.toResponse(recipe)
}

// Delete elimina receta, ingredientes y el producto terminado asociado como
// una sola unidad (ninguno tiene ciclo de vida independiente).
func (uc *UseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		productRepo repository.ProductRepository,
		recipeRepo repository.RecipeRepository,
	) error {
		if err := recipeRepo.Delete(recipe.ID); err != nil {
			return err
		}
		return productRepo.Delete(recipe.ProductID)
	})
}

// buildIngredients valida cada ingrediente (existe, no es producto terminado,
// cantidad positiva) y convierte la cantidad a la unidad del producto.
func (uc *UseCase) buildIngredients(in []dto.RecipeIngredientRequest) ([]entity.RecipeIngredient, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := make([]entity.RecipeIngredient, 0, len(in))
	for _, ing := range in {
		if ing.ProductID == "" || !ing.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ing.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.IsFinishedGood {
			return nil, domain.ErrInvalidInput
		}
		quantity := ing.Quantity
		if ing.UOM != "" && ing.UOM != product.UOM {
			quantity, err = uom.Convert(ing.Quantity, ing.UOM, product.UOM)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, entity.RecipeIngredient{
			ID:        uuid.New().String(),
			ProductID: ing.ProductID,
			Quantity:  quantity,
		})
	}
	return out, nil
}

func (uc *UseCase) toResponse(r *entity.Recipe) (*dto.RecipeResponse, error) {
	product, err := uc.productRepo.GetByID(r.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.RecipeResponse{
		ID:        r.ID,
		Product:   toProductResponse(product),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	for _, ing := range r.Ingredients {
		p, err := uc.productRepo.GetByID(ing.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		resp.Ingredients = append(resp.Ingredients, dto.RecipeIngredientResponse{
			ID:       ing.ID,
			Product:  toProductResponse(p),
			Quantity: ing.Quantity,
		})
	}
	return resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
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
