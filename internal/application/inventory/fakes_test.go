package inventory_test

import (
	"context"
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso del núcleo de inventario.

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newMemWarehouseRepo(ids ...string) *memWarehouseRepo {
	r := &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
	for _, id := range ids {
		r.warehouses[id] = &entity.Warehouse{ID: id, Name: "Bodega " + id}
	}
	return r
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}

func (r *memWarehouseRepo) List() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.warehouses))
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memMovementRepo struct {
	movements []*entity.Movement
	// failCreateAfter: número de Create exitosos antes de fallar (-1 = nunca falla).
	failCreateAfter int
	failErr         error
	creates         int
}

func newMemMovementRepo() *memMovementRepo {
	return &memMovementRepo{failCreateAfter: -1}
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	if r.failCreateAfter >= 0 && r.creates >= r.failCreateAfter {
		return r.failErr
	}
	r.creates++
	r.movements = append(r.movements, m)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, len(r.movements))
	copy(out, r.movements)
	// más reciente primero
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *memMovementRepo) ListAll() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, len(r.movements))
	copy(out, r.movements)
	return out, nil
}

type memRecipeRepo struct {
	recipes map[string]*entity.Recipe
}

func newMemRecipeRepo(recipes ...*entity.Recipe) *memRecipeRepo {
	r := &memRecipeRepo{recipes: map[string]*entity.Recipe{}}
	for _, rec := range recipes {
		r.recipes[rec.ID] = rec
	}
	return r
}

func (r *memRecipeRepo) Create(recipe *entity.Recipe) error {
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *memRecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	return r.recipes[id], nil
}

func (r *memRecipeRepo) GetByProductID(productID string) (*entity.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.ProductID == productID {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *memRecipeRepo) ReplaceIngredients(recipeID string, ingredients []entity.RecipeIngredient) error {
	if rec, ok := r.recipes[recipeID]; ok {
		rec.Ingredients = ingredients
	}
	return nil
}

func (r *memRecipeRepo) Delete(id string) error {
	delete(r.recipes, id)
	return nil
}

func (r *memRecipeRepo) List() ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// memTxRunner simula la transacción: ante error de fn revierte el libro de
// movimientos al estado previo, como haría un ROLLBACK real.
type memTxRunner struct {
	movRepo     *memMovementRepo
	productRepo *memProductRepo
	recipeRepo  *memRecipeRepo
}

func newMemTxRunner(mov *memMovementRepo, products *memProductRepo, recipes *memRecipeRepo) *memTxRunner {
	return &memTxRunner{movRepo: mov, productRepo: products, recipeRepo: recipes}
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
) error) error {
	snapshot := len(tx.movRepo.movements)
	if err := fn(tx.movRepo, tx.productRepo, tx.recipeRepo); err != nil {
		tx.movRepo.movements = tx.movRepo.movements[:snapshot]
		return err
	}
	return nil
}
