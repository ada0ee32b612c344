package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/catalog"
)

type catalogService interface {
	CreateProduct(ctx context.Context, input catalog.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input catalog.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, input catalog.ListInput) (domain.Page[domain.Product], error)
	ListOwnProducts(ctx context.Context, input catalog.ListInput) (domain.Page[domain.Product], error)
	CreateService(ctx context.Context, input catalog.ServiceInput) (*domain.ServiceListing, error)
	UpdateService(ctx context.Context, id uuid.UUID, input catalog.ServiceInput) (*domain.ServiceListing, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	GetService(ctx context.Context, id uuid.UUID) (*domain.ServiceListing, error)
	ListServices(ctx context.Context, input catalog.ListInput) (domain.Page[domain.ServiceListing], error)
	ListOwnServices(ctx context.Context, input catalog.ListInput) (domain.Page[domain.ServiceListing], error)
}

// CatalogHandler serves products and service listings.
type CatalogHandler struct {
	svc    catalogService
	upload uploader
	log    *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, store fileStore, limits UploadLimits, logger *slog.Logger) *CatalogHandler {
	log := logger.With("handler", "catalog")
	return &CatalogHandler{
		svc:    svc,
		upload: newUploader(store, limits, log),
		log:    log,
	}
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}

type serviceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PriceFrom   float64  `json:"priceFrom"`
	PriceUnit   string   `json:"priceUnit"`
	ServiceArea string   `json:"serviceArea"`
	Images      []string `json:"images"`
}

// readListing fills dst from JSON or from a multipart form. For forms the
// text fields are read by fromForm and uploaded "images" files are stored
// and returned.
func (h *CatalogHandler) readListing(w http.ResponseWriter, r *http.Request, dst any, fromForm func() error, folder string) ([]domain.StoredFile, error) {
	if !isMultipart(r) {
		return nil, decodeJSON(r, dst)
	}
	if err := h.upload.parseForm(w, r); err != nil {
		return nil, err
	}
	if err := fromForm(); err != nil {
		return nil, err
	}
	return h.upload.save(r, "images", folder)
}

func formFloat(r *http.Request, name string) (float64, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a number")
	}
	return f, nil
}

func formInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func (h *CatalogHandler) readProduct(w http.ResponseWriter, r *http.Request) (catalog.ProductInput, []domain.StoredFile, error) {
	var req productRequest
	uploaded, err := h.readListing(w, r, &req, func() (err error) {
		req.Name = r.FormValue("name")
		req.Description = r.FormValue("description")
		req.Category = r.FormValue("category")
		req.Images = formList(r, "images")
		if req.Price, err = formFloat(r, "price"); err != nil {
			return err
		}
		req.Stock, err = formInt(r, "stock")
		return err
	}, "products")
	if err != nil {
		return catalog.ProductInput{}, nil, err
	}
	return catalog.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      append(req.Images, fileURLs(uploaded)...),
	}, uploaded, nil
}

func (h *CatalogHandler) readService(w http.ResponseWriter, r *http.Request) (catalog.ServiceInput, []domain.StoredFile, error) {
	var req serviceRequest
	uploaded, err := h.readListing(w, r, &req, func() (err error) {
		req.Name = r.FormValue("name")
		req.Description = r.FormValue("description")
		req.Category = r.FormValue("category")
		req.PriceUnit = r.FormValue("priceUnit")
		req.ServiceArea = r.FormValue("serviceArea")
		req.Images = formList(r, "images")
		req.PriceFrom, err = formFloat(r, "priceFrom")
		return err
	}, "services")
	if err != nil {
		return catalog.ServiceInput{}, nil, err
	}
	return catalog.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceFrom:   req.PriceFrom,
		PriceUnit:   req.PriceUnit,
		ServiceArea: req.ServiceArea,
		Images:      append(req.Images, fileURLs(uploaded)...),
	}, uploaded, nil
}

func listingQuery(r *http.Request) (catalog.ListInput, error) {
	q := r.URL.Query()
	in := catalog.ListInput{
		Category:    q.Get("category"),
		Search:      q.Get("search"),
		Status:      q.Get("status"),
		SortBy:      q.Get("sortBy"),
		SortOrder:   q.Get("sortOrder"),
		PageRequest: pageRequest(r),
	}
	var err error
	if in.SellerID, err = queryUUID(r, "seller"); err != nil {
		return in, err
	}
	if in.MinPrice, err = queryFloat(r, "minPrice"); err != nil {
		return in, err
	}
	if in.MaxPrice, err = queryFloat(r, "maxPrice"); err != nil {
		return in, err
	}
	return in, nil
}

// CreateProduct handles POST /api/products.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	input, files, err := h.readProduct(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), input)
	if err != nil {
		h.upload.discard(r.Context(), files)
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Data:    toProduct(p),
		Message: "Product submitted for approval",
	})
}

// UpdateProduct handles PUT /api/products/{id}.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, files, err := h.readProduct(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), id, input)
	if err != nil {
		h.upload.discard(r.Context(), files)
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toProduct(p))
}

// DeleteProduct handles DELETE /api/products/{id}.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Product deleted")
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toProduct(p))
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.listProducts(w, r, h.svc.ListProducts)
}

// ListOwnProducts handles GET /api/sellers/me/products.
func (h *CatalogHandler) ListOwnProducts(w http.ResponseWriter, r *http.Request) {
	h.listProducts(w, r, h.svc.ListOwnProducts)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, catalog.ListInput) (domain.Page[domain.Product], error),
) {
	input, err := listingQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := fn(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toProduct))
}

// CreateService handles POST /api/services.
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	input, files, err := h.readService(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.CreateService(r.Context(), input)
	if err != nil {
		h.upload.discard(r.Context(), files)
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Data:    toService(l),
		Message: "Service submitted for approval",
	})
}

// UpdateService handles PUT /api/services/{id}.
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, files, err := h.readService(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.UpdateService(r.Context(), id, input)
	if err != nil {
		h.upload.discard(r.Context(), files)
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toService(l))
}

// DeleteService handles DELETE /api/services/{id}.
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteService(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Service deleted")
}

// GetService handles GET /api/services/{id}.
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.GetService(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toService(l))
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	h.listServices(w, r, h.svc.ListServices)
}

// ListOwnServices handles GET /api/sellers/me/services.
func (h *CatalogHandler) ListOwnServices(w http.ResponseWriter, r *http.Request) {
	h.listServices(w, r, h.svc.ListOwnServices)
}

func (h *CatalogHandler) listServices(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, catalog.ListInput) (domain.Page[domain.ServiceListing], error),
) {
	input, err := listingQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := fn(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toService))
}
