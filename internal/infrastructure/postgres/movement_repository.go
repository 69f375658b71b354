package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El libro es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste el movimiento y sus líneas. La atomicidad la da la
// transacción en la que corre el Querier (TxRunner).
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, origin_warehouse_id, destination_warehouse_id, user_id, reference, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type,
		nullable(movement.OriginWarehouseID), nullable(movement.DestinationWarehouseID),
		nullable(movement.UserID), nullable(movement.Reference),
		movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	itemQuery := `
		INSERT INTO movement_items (id, movement_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	for _, item := range movement.Items {
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, movement.ID, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("insert movement item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un movimiento con sus líneas.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, type, origin_warehouse_id, destination_warehouse_id, user_id, reference, date, created_at
		FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	items, err := r.itemsFor(m.ID)
	if err != nil {
		return nil, err
	}
	m.Items = items
	return m, nil
}

// List devuelve todos los movimientos con líneas, más reciente primero.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	return r.list("ORDER BY date DESC, created_at DESC")
}

// ListAll devuelve el libro completo para el cálculo de stock. El orden es
// irrelevante: la suma es conmutativa.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	return r.list("")
}

func (r *MovementRepo) list(orderBy string) ([]*entity.Movement, error) {
	query := `
		SELECT id, type, origin_warehouse_id, destination_warehouse_id, user_id, reference, date, created_at
		FROM movements ` + orderBy
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	index := map[string]*entity.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
		index[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	itemRows, err := r.q.Query(context.Background(), `
		SELECT id, movement_id, product_id, quantity FROM movement_items`)
	if err != nil {
		return nil, fmt.Errorf("list movement items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var item entity.MovementItem
		if err := itemRows.Scan(&item.ID, &item.MovementID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan movement item: %w", err)
		}
		if m, ok := index[item.MovementID]; ok {
			m.Items = append(m.Items, item)
		}
	}
	return list, itemRows.Err()
}

func (r *MovementRepo) itemsFor(movementID string) ([]entity.MovementItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, movement_id, product_id, quantity
		FROM movement_items WHERE movement_id = $1`, movementID)
	if err != nil {
		return nil, fmt.Errorf("get movement items: %w", err)
	}
	defer rows.Close()
	var items []entity.MovementItem
	for rows.Next() {
		var item entity.MovementItem
		if err := rows.Scan(&item.ID, &item.MovementID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan movement item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var origin, destination, userID, reference *string
	err := row.Scan(&m.ID, &m.Type, &origin, &destination, &userID, &reference, &m.Date, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.OriginWarehouseID = orEmpty(origin)
	m.DestinationWarehouseID = orEmpty(destination)
	m.UserID = orEmpty(userID)
	m.Reference = orEmpty(reference)
	return &m, nil
}
