package repository_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/muhamad-rafli/inventory-api/internal/models"
	repository "github.com/muhamad-rafli/inventory-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func boolPtr(b bool) *bool           { return &b }
func int64Ptr(i int64) *int64        { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func productPayload(action models.Action) *models.ProductPayload {
	now := time.Now()

	payload := &models.ProductPayload{
		Action: action,
		Name:   "Kopi Gayo 250g",
		Image:  strPtr("/public/products/kopi.jpg"),
		Price:  floatPtr(45000),
		Status: boolPtr(true),
		Stock:  int64Ptr(10),
	}

	if action == models.ActionCreate {
		payload.Creby = "admin"
		payload.Cretime = timePtr(now)
	} else {
		payload.Modby = "admin"
		payload.Modtime = timePtr(now)
	}

	return payload
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	productCols := []string{"id", "name", "image", "price", "status", "creby", "cretime", "modby", "modtime", "stock"}

	t.Run("ListProducts", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			rows := sqlmock.NewRows(productCols).
				AddRow(int64(1), "Kopi Gayo 250g", "/public/products/kopi.jpg", 45000.0, true, "admin", now, nil, nil, int64(10)).
				AddRow(int64(2), "Teh Hijau", nil, 20000.0, false, "admin", now, nil, nil, nil)

			mock.ExpectQuery("SELECT (.+) FROM ms_products a LEFT JOIN ms_product_stock b").
				WillReturnRows(rows)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.NoError(t, err)
			require.Len(t, products, 2)
			assert.Equal(t, int64(1), products[0].ID)
			require.NotNil(t, products[0].Stock)
			assert.Equal(t, int64(10), *products[0].Stock)
			assert.Nil(t, products[1].Stock, "missing stock row should scan as nil")
			assert.Nil(t, products[1].Image)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("QueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("list query failed")
			mock.ExpectQuery("SELECT (.+) FROM ms_products a LEFT JOIN ms_product_stock b").
				WillReturnError(dbError)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			rows := sqlmock.NewRows(productCols).
				AddRow(int64(7), "Kopi Gayo 250g", "/public/products/kopi.jpg", 45000.0, true, "admin", now, nil, nil, int64(3))

			mock.ExpectQuery("SELECT (.+) FROM ms_products a LEFT JOIN ms_product_stock b (.+) WHERE a.id =").
				WithArgs(int64(7)).
				WillReturnRows(rows)

			// Act
			product, err := repo.GetProductByID(ctx, 7)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(7), product.ID)
			require.NotNil(t, product.Stock)
			assert.Equal(t, int64(3), *product.Stock)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery("SELECT (.+) FROM ms_products a LEFT JOIN ms_product_stock b (.+) WHERE a.id =").
				WithArgs(int64(404)).
				WillReturnError(sql.ErrNoRows)

			// Act
			product, err := repo.GetProductByID(ctx, 404)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, product)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("CreateProduct", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			payload := productPayload(models.ActionCreate)

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO ms_products").
				WithArgs(payload.Name, payload.Image, payload.Price, payload.Status, payload.Creby, payload.Cretime).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
			mock.ExpectExec("INSERT INTO ms_product_stock").
				WithArgs(int64(42), payload.Stock, payload.Creby, payload.Cretime).
				WillReturnResult(sqlmock.NewResult(1, 1))
			mock.ExpectCommit()

			// Act
			id, err := repo.CreateProduct(ctx, payload)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(42), id)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("StockInsertFailureRollsBack", func(t *testing.T) {
			// Arrange
			payload := productPayload(models.ActionCreate)
			dbError := errors.New("stock insert failed")

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO ms_products").
				WithArgs(payload.Name, payload.Image, payload.Price, payload.Status, payload.Creby, payload.Cretime).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(43)))
			mock.ExpectExec("INSERT INTO ms_product_stock").
				WithArgs(int64(43), payload.Stock, payload.Creby, payload.Cretime).
				WillReturnError(dbError)
			mock.ExpectRollback()

			// Act
			id, err := repo.CreateProduct(ctx, payload)

			// Assert
			require.Error(t, err, "a failed second statement must fail the whole create")
			assert.ErrorIs(t, err, dbError)
			assert.Zero(t, id)
			require.NoError(t, mock.ExpectationsWereMet(), "the product insert must not be committed")
		})

		t.Run("BeginError", func(t *testing.T) {
			// Arrange
			payload := productPayload(models.ActionCreate)
			dbError := errors.New("no connection")

			mock.ExpectBegin().WillReturnError(dbError)

			// Act
			_, err := repo.CreateProduct(ctx, payload)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateProduct", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			payload := productPayload(models.ActionUpdate)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE ms_products").
				WithArgs(payload.Name, payload.Image, payload.Price, payload.Status, payload.Modby, payload.Modtime, int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE ms_product_stock").
				WithArgs(payload.Stock, payload.Modby, payload.Modtime, int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.UpdateProduct(ctx, 7, payload)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("MissingIDStillSucceeds", func(t *testing.T) {
			// Zero affected rows are not inspected; the legacy API reports
			// success for updates against ids that do not exist.
			payload := productPayload(models.ActionUpdate)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE ms_products").
				WithArgs(payload.Name, payload.Image, payload.Price, payload.Status, payload.Modby, payload.Modtime, int64(404)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec("UPDATE ms_product_stock").
				WithArgs(payload.Stock, payload.Modby, payload.Modtime, int64(404)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			// Act
			err := repo.UpdateProduct(ctx, 404, payload)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("StockUpdateFailureRollsBack", func(t *testing.T) {
			// Arrange
			payload := productPayload(models.ActionUpdate)
			dbError := errors.New("stock update failed")

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE ms_products").
				WithArgs(payload.Name, payload.Image, payload.Price, payload.Status, payload.Modby, payload.Modtime, int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE ms_product_stock").
				WithArgs(payload.Stock, payload.Modby, payload.Modtime, int64(7)).
				WillReturnError(dbError)
			mock.ExpectRollback()

			// Act
			err := repo.UpdateProduct(ctx, 7, payload)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteProduct", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM ms_products WHERE id =").
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.DeleteProduct(ctx, 7)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFoundRollsBack", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM ms_products WHERE id =").
				WithArgs(int64(404)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			// Act
			err := repo.DeleteProduct(ctx, 404)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "a miss must not be committed")
		})

		t.Run("RepeatedDeleteStaysNotFound", func(t *testing.T) {
			// Deleting an already-deleted id answers not-found every time,
			// never an internal error.
			for range 2 {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM ms_products WHERE id =").
					WithArgs(int64(404)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()

				err := repo.DeleteProduct(ctx, 404)

				require.Error(t, err)
				assert.ErrorIs(t, err, sql.ErrNoRows)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
