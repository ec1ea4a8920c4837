package http

import "github.com/kahvecikaan/catalog-api/internal/domain"

// Request bodies and form fields. Each endpoint decodes into its own type
// and validates it before calling a service.

// UpdateProductRequest holds the text fields of the product update form.
// Empty values leave the current field unchanged.
type UpdateProductRequest struct {
	Title         string   `validate:"omitempty,min=3"`
	Description   string   `validate:"omitempty,min=10"`
	RemovedImages []string `validate:"dive,required"`
}

// DeleteProductRequest is the body of POST /products/delete
type DeleteProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// PageURLParam wraps the pageUrl path segment for validation
type PageURLParam struct {
	PageURL string `validate:"min=3,pageurl"`
}

// RemoveCarouselImagesRequest is the body of DELETE /carousel/{id}
type RemoveCarouselImagesRequest struct {
	RemovedImages []string `json:"removedImages"`
}

// EnquiryRequest is the body of POST /enquiries
type EnquiryRequest struct {
	ProductID string `json:"productId"`
	Name      string `json:"name" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	ContactNo string `json:"contactNo" validate:"required,contactno"`
	Message   string `json:"message" validate:"required,min=10"`
}

// ErrorResponse is the body of every non-validation error
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists failed field validations
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateProductResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
	URL     string          `json:"url"`
}

type ProductMessageResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

type ProductsResponse struct {
	Products []*domain.Product `json:"products"`
	Total    int64             `json:"total"`
}

type NavigationResponse struct {
	Products []domain.ProductLink `json:"products"`
	Total    int64                `json:"total"`
}

type CarouselResponse struct {
	Message  string           `json:"message"`
	Carousel *domain.Carousel `json:"carousel"`
}

type CarouselSlidesResponse struct {
	Success bool     `json:"success"`
	Slides  []string `json:"slides"`
	ID      string   `json:"id,omitempty"`
}

type CarouselRemovalResponse struct {
	Message      string           `json:"message"`
	UpdatedSlide *domain.Carousel `json:"updatedSlide,omitempty"`
}

type EnquiryResponse struct {
	Message string          `json:"message"`
	Enquiry *domain.Enquiry `json:"enquiry"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
