package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/muhamad-rafli/inventory-api/internal/models"
	"github.com/muhamad-rafli/inventory-api/internal/utils"
)

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]*models.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	CreateOrder(ctx context.Context, payload *models.OrderPayload) (int64, error)
	UpdateOrder(ctx context.Context, id int64, payload *models.OrderPayload) error
	DeleteOrder(ctx context.Context, id int64) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT a.id, a.order_code, a.product_id, a.quantity, a.price, a.status, a.start_process, a.end_process, a.payment_type, a.creby, a.cretime, a.modby, a.modtime, b.name AS product_name
		FROM tr_order a
		LEFT JOIN ms_products b ON a.product_id = b.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []*models.Order

	for rows.Next() {
		order := &models.Order{}

		err := rows.Scan(&order.ID, &order.OrderCode, &order.ProductID, &order.Quantity, &order.Price, &order.Status, &order.StartProcess, &order.EndProcess, &order.PaymentType, &order.Creby, &order.Cretime, &order.Modby, &order.Modtime, &order.ProductName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	query := `
		SELECT a.id, a.order_code, a.product_id, a.quantity, a.price, a.status, a.start_process, a.end_process, a.payment_type, a.creby, a.cretime, a.modby, a.modtime, b.name AS product_name, b.price AS satuan_price, c.stock
		FROM tr_order a
		LEFT JOIN ms_products b ON a.product_id = b.id
		LEFT JOIN ms_product_stock c ON a.product_id = c.product_id
		WHERE a.id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&order.ID, &order.OrderCode, &order.ProductID, &order.Quantity, &order.Price, &order.Status, &order.StartProcess, &order.EndProcess, &order.PaymentType, &order.Creby, &order.Cretime, &order.Modby, &order.Modtime, &order.ProductName, &order.UnitPrice, &order.Stock)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// CreateOrder inserts the order row and adjusts the product's stock in one
// transaction. The adjustment clamps at zero so stock is never persisted
// negative.
//
// The CASE compares against the literal 'cancel', while the status enum
// stores its cancelled variant as "cancle". The two never match, so every
// create takes the decrement branch. Intent is ambiguous (see DESIGN.md);
// the comparison is kept verbatim pending product-owner clarification.
func (r *orderRepository) CreateOrder(ctx context.Context, payload *models.OrderPayload) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	var id int64

	query := `
		INSERT INTO tr_order (order_code, product_id, quantity, price, status, start_process, end_process, payment_type, creby, cretime)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err = tx.QueryRowContext(dbCtx, query, payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Creby, payload.Cretime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	stockQuery := `
		UPDATE ms_product_stock
		SET stock = GREATEST(stock + CASE WHEN $1 = 'cancel' THEN $2 ELSE -$2 END, 0), modby = $3, modtime = $4
		WHERE product_id = $5
	`

	_, err = tx.ExecContext(dbCtx, stockQuery, payload.Status, payload.Quantity, payload.Creby, payload.Cretime, payload.ProductID)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust product stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// UpdateOrder rewrites the order row only. Stock is touched at creation,
// never on later status transitions, and affected rows are not inspected
// (legacy silent-success on a missing id).
func (r *orderRepository) UpdateOrder(ctx context.Context, id int64, payload *models.OrderPayload) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		UPDATE tr_order
		SET order_code = $1, product_id = $2, quantity = $3, price = $4, status = $5, start_process = $6, end_process = $7, payment_type = $8, modby = $9, modtime = $10
		WHERE id = $11
	`

	_, err = tx.ExecContext(dbCtx, query, payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Modby, payload.Modtime, id)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteOrder removes the order row by id without reversing any stock
// adjustment. Zero affected rows rolls back and reports sql.ErrNoRows.
func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	result, err := tx.ExecContext(dbCtx, `DELETE FROM tr_order WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
