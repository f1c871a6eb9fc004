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

func orderPayload(action models.Action) *models.OrderPayload {
	now := time.Now()

	payload := &models.OrderPayload{
		Action:       action,
		OrderCode:    "ORD-2024-0001",
		ProductID:    7,
		Quantity:     3,
		Price:        floatPtr(135000),
		Status:       models.OrderStatusPending,
		StartProcess: now,
		EndProcess:   now.Add(time.Hour),
		PaymentType:  "transfer",
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

func TestNewOrderRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	assert.NotNil(t, repo, "NewOrderRepo should return a non-nil repository")
}

func TestOrderRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := t.Context()

	listCols := []string{"id", "order_code", "product_id", "quantity", "price", "status", "start_process", "end_process", "payment_type", "creby", "cretime", "modby", "modtime", "product_name"}
	showCols := append(append([]string{}, listCols...), "satuan_price", "stock")

	t.Run("ListOrders", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			rows := sqlmock.NewRows(listCols).
				AddRow(int64(1), "ORD-2024-0001", int64(7), int64(3), 135000.0, "pending", now, now, "transfer", "admin", now, nil, nil, "Kopi Gayo 250g").
				AddRow(int64(2), "ORD-2024-0002", int64(9), int64(1), 20000.0, "completed", now, now, "cash", "admin", now, nil, nil, nil)

			mock.ExpectQuery("SELECT (.+) FROM tr_order a LEFT JOIN ms_products b").
				WillReturnRows(rows)

			// Act
			orders, err := repo.ListOrders(ctx)

			// Assert
			require.NoError(t, err)
			require.Len(t, orders, 2)
			assert.Equal(t, "ORD-2024-0001", orders[0].OrderCode)
			require.NotNil(t, orders[0].ProductName)
			assert.Equal(t, "Kopi Gayo 250g", *orders[0].ProductName)
			assert.Nil(t, orders[1].ProductName, "an order for a deleted product keeps a nil name")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("QueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("list query failed")
			mock.ExpectQuery("SELECT (.+) FROM tr_order a LEFT JOIN ms_products b").
				WillReturnError(dbError)

			// Act
			orders, err := repo.ListOrders(ctx)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, orders)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetOrderByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			rows := sqlmock.NewRows(showCols).
				AddRow(int64(1), "ORD-2024-0001", int64(7), int64(3), 135000.0, "pending", now, now, "transfer", "admin", now, nil, nil, "Kopi Gayo 250g", 45000.0, int64(7))

			mock.ExpectQuery("SELECT (.+) FROM tr_order a (.+) WHERE a.id =").
				WithArgs(int64(1)).
				WillReturnRows(rows)

			// Act
			order, err := repo.GetOrderByID(ctx, 1)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(1), order.ID)
			require.NotNil(t, order.UnitPrice)
			assert.Equal(t, 45000.0, *order.UnitPrice)
			require.NotNil(t, order.Stock)
			assert.Equal(t, int64(7), *order.Stock)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery("SELECT (.+) FROM tr_order a (.+) WHERE a.id =").
				WithArgs(int64(404)).
				WillReturnError(sql.ErrNoRows)

			// Act
			order, err := repo.GetOrderByID(ctx, 404)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, order)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("CreateOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			payload := orderPayload(models.ActionCreate)

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO tr_order").
				WithArgs(payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Creby, payload.Cretime).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
			mock.ExpectExec("UPDATE ms_product_stock").
				WithArgs(payload.Status, payload.Quantity, payload.Creby, payload.Cretime, payload.ProductID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			id, err := repo.CreateOrder(ctx, payload)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(11), id)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("CancelledStatusStillAdjustsStock", func(t *testing.T) {
			// The stored cancelled status never equals the 'cancel' literal in
			// the adjustment CASE, so the quantity is passed through and the
			// decrement branch fires like any other status.
			payload := orderPayload(models.ActionCreate)
			payload.Status = models.OrderStatusCancelled

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO tr_order").
				WithArgs(payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Creby, payload.Cretime).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
			mock.ExpectExec("UPDATE ms_product_stock").
				WithArgs(models.OrderStatusCancelled, payload.Quantity, payload.Creby, payload.Cretime, payload.ProductID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			id, err := repo.CreateOrder(ctx, payload)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(12), id)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("StockAdjustmentFailureRollsBack", func(t *testing.T) {
			// Arrange
			payload := orderPayload(models.ActionCreate)
			dbError := errors.New("stock update failed")

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO tr_order").
				WithArgs(payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Creby, payload.Cretime).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(13)))
			mock.ExpectExec("UPDATE ms_product_stock").
				WithArgs(payload.Status, payload.Quantity, payload.Creby, payload.Cretime, payload.ProductID).
				WillReturnError(dbError)
			mock.ExpectRollback()

			// Act
			id, err := repo.CreateOrder(ctx, payload)

			// Assert
			require.Error(t, err, "a failed stock adjustment must fail the whole create")
			assert.ErrorIs(t, err, dbError)
			assert.Zero(t, id)
			require.NoError(t, mock.ExpectationsWereMet(), "the order insert must not be committed")
		})

		t.Run("InsertFailureRollsBack", func(t *testing.T) {
			// Arrange
			payload := orderPayload(models.ActionCreate)
			dbError := errors.New("order insert failed")

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO tr_order").
				WithArgs(payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Creby, payload.Cretime).
				WillReturnError(dbError)
			mock.ExpectRollback()

			// Act
			id, err := repo.CreateOrder(ctx, payload)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Zero(t, id)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateOrder", func(t *testing.T) {
		t.Run("SuccessWithoutStockAdjustment", func(t *testing.T) {
			// An update rewrites the order row only; no ms_product_stock
			// statement is expected here.
			payload := orderPayload(models.ActionUpdate)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE tr_order").
				WithArgs(payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Modby, payload.Modtime, int64(1)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.UpdateOrder(ctx, 1, payload)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("MissingIDStillSucceeds", func(t *testing.T) {
			// Arrange
			payload := orderPayload(models.ActionUpdate)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE tr_order").
				WithArgs(payload.OrderCode, payload.ProductID, payload.Quantity, payload.Price, payload.Status, payload.StartProcess, payload.EndProcess, payload.PaymentType, payload.Modby, payload.Modtime, int64(404)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			// Act
			err := repo.UpdateOrder(ctx, 404, payload)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM tr_order WHERE id =").
				WithArgs(int64(1)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.DeleteOrder(ctx, 1)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFoundRollsBack", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM tr_order WHERE id =").
				WithArgs(int64(404)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			// Act
			err := repo.DeleteOrder(ctx, 404)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "a miss must not be committed")
		})
	})
}
