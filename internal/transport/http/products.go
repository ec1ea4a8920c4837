package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
	uploader       *Uploader
	validator      *domain.Validation
	publicURL      string
	logger         hclog.Logger
}

// NewProductHandler creates a product handler. publicURL is the base of the
// links returned for new products; when empty the request host is used.
func NewProductHandler(ps service.ProductService, uploader *Uploader, validator *domain.Validation, publicURL string, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: ps,
		uploader:       uploader,
		validator:      validator,
		publicURL:      strings.TrimRight(publicURL, "/"),
		logger:         log,
	}
}

// AddProduct handles POST /products
//
// swagger:route POST /products products addProduct
//
// Creates a product from a multipart form with title, description and up to
// ten images.
//
// Responses:
//
//	201: createProductResponse
//	400: errorResponse
//	401: errorResponse
//	500: errorResponse
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeError(w, h.logger, err, "Error creating product")
		return
	}

	if imageCount(r) == 0 {
		writeError(w, h.logger, domain.ErrNoImages, "Error creating product")
		return
	}
	title, description := r.FormValue("title"), r.FormValue("description")
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		writeError(w, h.logger, domain.ErrTitleRequired, "Error creating product")
		return
	}

	images, err := h.uploader.SaveImages(r, productImages)
	if err != nil {
		writeError(w, h.logger, err, "Error saving images")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), service.CreateProductInput{
		Title:       title,
		Description: description,
		Images:      images,
	})
	if err != nil {
		writeError(w, h.logger, err, "Error creating product")
		return
	}

	writeJSON(w, http.StatusCreated, CreateProductResponse{
		Message: "Product created successfully",
		Product: product,
		URL:     h.productURL(r, product.PageURL),
	})
}

// GetProducts handles GET /products
//
// swagger:route GET /products products listProducts
//
// Returns a page of products, newest first.
//
// Responses:
//
//	200: productsResponse
//	500: errorResponse
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	products, total, err := h.productService.ListProducts(r.Context(), page, limit)
	if err != nil {
		writeError(w, h.logger, err, "Error fetching products")
		return
	}

	if products == nil {
		products = service.Products{}
	}
	writeJSON(w, http.StatusOK, ProductsResponse{Products: products, Total: total})
}

// GetNavigation handles GET /products/navigation
//
// swagger:route GET /products/navigation products listNavigation
//
// Returns ID, title and page URL of products for menus.
//
// Responses:
//
//	200: navigationResponse
//	500: errorResponse
func (h *ProductHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 10)

	links, total, err := h.productService.ListNavigation(r.Context(), skip, limit)
	if err != nil {
		writeError(w, h.logger, err, "Error fetching products")
		return
	}

	if links == nil {
		links = []domain.ProductLink{}
	}
	writeJSON(w, http.StatusOK, NavigationResponse{Products: links, Total: total})
}

// GetProductByID handles GET /products/by-id/{id}
//
// swagger:route GET /products/by-id/{id} products getProductByID
//
// Returns a product by ID.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "An error occurred while fetching the product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetProductByPageURL handles GET /products/by-url/{pageUrl}
//
// swagger:route GET /products/by-url/{pageUrl} products getProductByPageURL
//
// Returns a product by its page URL.
//
// Responses:
//
//	200: productResponse
//	400: validationErrorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) GetProductByPageURL(w http.ResponseWriter, r *http.Request) {
	param := PageURLParam{PageURL: mux.Vars(r)["pageUrl"]}
	if errs := h.validator.Validate(param); len(errs) > 0 {
		writeError(w, h.logger, errs, "Error fetching product")
		return
	}

	product, err := h.productService.GetProductByPageURL(r.Context(), param.PageURL)
	if err != nil {
		writeError(w, h.logger, err, "An error occurred while fetching the product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// UpdateProduct handles PUT /products/{id}
//
// swagger:route PUT /products/{id} products updateProduct
//
// Updates title and description, removes listed images and appends new
// uploads.
//
// Responses:
//
//	200: productMessageResponse
//	400: validationErrorResponse
//	401: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := parseForm(r); err != nil {
		writeError(w, h.logger, err, "An error occurred while updating the product")
		return
	}

	req := UpdateProductRequest{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if raw := strings.TrimSpace(r.FormValue("removedImages")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.RemovedImages); err != nil {
			writeError(w, h.logger, fmt.Errorf("%w: removedImages must be a JSON array of strings", domain.ErrInvalid), "An error occurred while updating the product")
			return
		}
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		writeError(w, h.logger, errs, "An error occurred while updating the product")
		return
	}

	images, err := h.uploader.SaveImages(r, productImages)
	if err != nil {
		writeError(w, h.logger, err, "Error saving images")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, service.UpdateProductInput{
		Title:         req.Title,
		Description:   req.Description,
		RemovedImages: req.RemovedImages,
		NewImages:     images,
	})
	if err != nil {
		writeError(w, h.logger, err, "An error occurred while updating the product")
		return
	}

	writeJSON(w, http.StatusOK, ProductMessageResponse{Message: "Product updated successfully", Product: product})
}

// DeleteProduct handles POST /products/delete
//
// swagger:route POST /products/delete products deleteProduct
//
// Deletes a product and its image files.
//
// Responses:
//
//	200: messageResponse
//	400: errorResponse
//	401: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	var req DeleteProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "Error deleting product")
		return
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		writeError(w, h.logger, errs, "Error deleting product")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), req.ProductID); err != nil {
		writeError(w, h.logger, err, "Error deleting product")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

func (h *ProductHandler) productURL(r *http.Request, pageURL string) string {
	base := h.publicURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
			scheme = fwd
		}
		base = scheme + "://" + r.Host
	}
	return base + "/products/" + pageURL
}

// queryInt reads a numeric query parameter. Missing, malformed or zero values
// fall back to def; negative values are passed through for the repository
// window to clamp.
func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v == 0 {
		return def
	}
	return v
}

// decodeJSON reads a JSON request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body", domain.ErrInvalid)
	}
	return nil
}
