package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/muhamad-rafli/inventory-api/internal/api/middleware"
	apperrors "github.com/muhamad-rafli/inventory-api/internal/errors"
	"github.com/muhamad-rafli/inventory-api/internal/models"
	service "github.com/muhamad-rafli/inventory-api/internal/services"
	"github.com/muhamad-rafli/inventory-api/internal/utils"
	"github.com/muhamad-rafli/inventory-api/internal/utils/response"
	"github.com/muhamad-rafli/inventory-api/internal/validation"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orders, err := h.orderService.ListOrders(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)

	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid order ID"))
			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Order retrieved successfully", order)

	}
}

func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := decodeOrder(r, models.ActionCreate)
		if err != nil {
			logger.Warn("Invalid order request", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if result := validation.Order(payload); !result.IsValid {
			response.ValidationErrors(w, result.Errors)
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), payload)
		if err != nil {
			logger.Error("Error during order creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order created successfully", slog.Int64("orderId", order.ID))
		response.Success(w, http.StatusCreated, "Order created successfully", order)

	}
}

func (h *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid order ID"))
			return
		}

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := decodeOrder(r, models.ActionUpdate)
		if err != nil {
			logger.Warn("Invalid order request", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if result := validation.Order(payload); !result.IsValid {
			response.ValidationErrors(w, result.Errors)
			return
		}

		order, err := h.orderService.UpdateOrder(r.Context(), id, payload)
		if err != nil {
			logger.Error("Error during order update", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order updated successfully", slog.Int64("orderId", order.ID))
		response.Success(w, http.StatusOK, "Order updated successfully", order)

	}
}

func (h *OrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid order ID"))
			return
		}

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
			logger.Error("Error during order deletion", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order deleted successfully", slog.Int64("orderId", id))
		response.Success(w, http.StatusOK, "Order deleted successfully", id)

	}
}

// decodeOrder decodes the JSON body into a typed payload, defaulting the
// optional timestamps to now.
func decodeOrder(r *http.Request, action models.Action) (*models.OrderPayload, error) {

	var req models.CreateOrderRequest

	if err := utils.DecodeJSONBody(r, &req); err != nil {
		return nil, apperrors.BadRequestError("Invalid request body").WithError(err)
	}

	now := time.Now()

	payload := &models.OrderPayload{
		Action:       action,
		OrderCode:    req.OrderCode,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Price:        req.Price,
		Status:       req.Status,
		PaymentType:  req.PaymentType,
		StartProcess: now,
		EndProcess:   now,
	}

	if req.StartProcess != nil {
		payload.StartProcess = *req.StartProcess
	}
	if req.EndProcess != nil {
		payload.EndProcess = *req.EndProcess
	}

	if action == models.ActionCreate {
		payload.Creby = req.Creby
		payload.Cretime = req.Cretime

		if payload.Cretime == nil {
			payload.Cretime = &now
		}
	} else {
		payload.Modby = req.Modby
		payload.Modtime = req.Modtime

		if payload.Modtime == nil {
			payload.Modtime = &now
		}
	}

	return payload, nil
}
