package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/muhamad-rafli/inventory-api/internal/api/middleware"
	apperrors "github.com/muhamad-rafli/inventory-api/internal/errors"
	"github.com/muhamad-rafli/inventory-api/internal/models"
	service "github.com/muhamad-rafli/inventory-api/internal/services"
	"github.com/muhamad-rafli/inventory-api/internal/storage"
	"github.com/muhamad-rafli/inventory-api/internal/utils/response"
	"github.com/muhamad-rafli/inventory-api/internal/validation"
)

const maxUploadSize = 10 << 20

type ProductHandler struct {
	productService service.ProductService
	store          *storage.FileStore
}

func NewProductHandler(productService service.ProductService, store *storage.FileStore) *ProductHandler {
	return &ProductHandler{productService: productService, store: store}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListProducts(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Products retrieved successfully", products)

	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid product ID"))
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Products retrieved successfully", product)

	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		now := time.Now()

		payload, err := h.decodeForm(r, models.ActionCreate, now)
		if err != nil {
			logger.Warn("Invalid product form", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if result := validation.Product(payload); !result.IsValid {
			response.ValidationErrors(w, result.Errors)
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), payload)
		if err != nil {
			logger.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, "Product created successfully", product)

	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid product ID"))
			return
		}

		now := time.Now()

		payload, err := h.decodeForm(r, models.ActionUpdate, now)
		if err != nil {
			logger.Warn("Invalid product form", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if result := validation.Product(payload); !result.IsValid {
			response.ValidationErrors(w, result.Errors)
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, payload)
		if err != nil {
			logger.Error("Error during product update", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusOK, "Product updated successfully", product)

	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid product ID"))
			return
		}

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			logger.Error("Error during product deletion", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted successfully", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, "Product deleted successfully", id)

	}
}

// decodeForm coerces the multipart form into a typed payload. Absent
// fields become nil and are left for validation to report; malformed
// values are coercion errors and answered as 400 before validation runs.
func (h *ProductHandler) decodeForm(r *http.Request, action models.Action, now time.Time) (*models.ProductPayload, error) {

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, apperrors.BadRequestError("Invalid form data").WithError(err)
	}

	price, err := formFloat(r.FormValue("price"), "price")
	if err != nil {
		return nil, err
	}

	stock, err := formInt(r.FormValue("stock"), "stock")
	if err != nil {
		return nil, err
	}

	imagePath, err := h.imagePath(r, action)
	if err != nil {
		return nil, err
	}

	payload := &models.ProductPayload{
		Action: action,
		Name:   r.FormValue("name"),
		Image:  imagePath,
		Price:  price,
		Status: formBool(r.FormValue("status")),
		Stock:  stock,
	}

	if action == models.ActionCreate {
		payload.Creby = r.FormValue("creby")

		payload.Cretime, err = formTime(r.FormValue("cretime"), "cretime", now)
		if err != nil {
			return nil, err
		}
	} else {
		payload.Modby = r.FormValue("modby")

		payload.Modtime, err = formTime(r.FormValue("modtime"), "modtime", now)
		if err != nil {
			return nil, err
		}
	}

	return payload, nil
}

// imagePath stores an uploaded file when present. On update, an explicit
// imagePath form value is accepted in place of a new upload; on create,
// no upload means a nil image (validation rejects it).
func (h *ProductHandler) imagePath(r *http.Request, action models.Action) (*string, error) {

	file, header, err := r.FormFile("image")
	if err == nil {
		file.Close()

		path, err := h.store.SaveProductImage(header)
		if err != nil {
			return nil, apperrors.InternalError("Failed to store uploaded image").WithError(err)
		}

		return &path, nil
	}

	if err != http.ErrMissingFile {
		return nil, apperrors.BadRequestError("Invalid image upload").WithError(err)
	}

	if action != models.ActionCreate {
		if existing := r.FormValue("imagePath"); existing != "" {
			return &existing, nil
		}
	}

	return nil, nil
}

func formFloat(value, field string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, apperrors.BadRequestError(fmt.Sprintf("Field %s must be a number", field)).WithError(err)
	}

	return &parsed, nil
}

func formInt(value, field string) (*int64, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, apperrors.BadRequestError(fmt.Sprintf("Field %s must be an integer", field)).WithError(err)
	}

	return &parsed, nil
}

// formBool accepts "true"/"1" as true; any other present value is false.
// Absent means undecided and is left to validation.
func formBool(value string) *bool {
	if value == "" {
		return nil
	}

	parsed := value == "true" || value == "1"

	return &parsed
}

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// formTime parses an optional timestamp field, defaulting to now when the
// field is absent.
func formTime(value, field string, now time.Time) (*time.Time, error) {
	if value == "" {
		return &now, nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, apperrors.BadRequestError(fmt.Sprintf("Field %s must be a valid date", field))
}
