package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/muhamad-rafli/inventory-api/internal/models"
	"github.com/muhamad-rafli/inventory-api/internal/utils"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, payload *models.ProductPayload) (int64, error)
	UpdateProduct(ctx context.Context, id int64, payload *models.ProductPayload) error
	DeleteProduct(ctx context.Context, id int64) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT a.id, a.name, a.image, a.price, a.status, a.creby, a.cretime, a.modby, a.modtime, b.stock
		FROM ms_products a
		LEFT JOIN ms_product_stock b ON a.id = b.product_id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(&product.ID, &product.Name, &product.Image, &product.Price, &product.Status, &product.Creby, &product.Cretime, &product.Modby, &product.Modtime, &product.Stock)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT a.id, a.name, a.image, a.price, a.status, a.creby, a.cretime, a.modby, a.modtime, b.stock
		FROM ms_products a
		LEFT JOIN ms_product_stock b ON a.id = b.product_id
		WHERE a.id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.Name, &product.Image, &product.Price, &product.Status, &product.Creby, &product.Cretime, &product.Modby, &product.Modtime, &product.Stock)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// CreateProduct inserts the product row and its stock row in one
// transaction. Either both rows exist afterwards or neither does.
func (r *productRepository) CreateProduct(ctx context.Context, payload *models.ProductPayload) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	var id int64

	query := `
		INSERT INTO ms_products (name, image, price, status, creby, cretime)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = tx.QueryRowContext(dbCtx, query, payload.Name, payload.Image, payload.Price, payload.Status, payload.Creby, payload.Cretime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	stockQuery := `
		INSERT INTO ms_product_stock (product_id, stock, creby, cretime)
		VALUES ($1, $2, $3, $4)
	`

	_, err = tx.ExecContext(dbCtx, stockQuery, id, payload.Stock, payload.Creby, payload.Cretime)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// UpdateProduct updates the product row and its stock row in one
// transaction. Affected row counts are not inspected: updating a missing
// id commits cleanly and reports success, matching the legacy behavior.
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, payload *models.ProductPayload) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		UPDATE ms_products
		SET name = $1, image = $2, price = $3, status = $4, modby = $5, modtime = $6
		WHERE id = $7
	`

	_, err = tx.ExecContext(dbCtx, query, payload.Name, payload.Image, payload.Price, payload.Status, payload.Modby, payload.Modtime, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	stockQuery := `
		UPDATE ms_product_stock
		SET stock = $1, modby = $2, modtime = $3
		WHERE product_id = $4
	`

	_, err = tx.ExecContext(dbCtx, stockQuery, payload.Stock, payload.Modby, payload.Modtime, id)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteProduct removes the product row by id. Zero affected rows rolls
// back and reports sql.ErrNoRows so the caller can answer not-found.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	result, err := tx.ExecContext(dbCtx, `DELETE FROM ms_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
