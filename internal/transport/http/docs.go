// Package classification of Catalog API
//
// # Documentation for Catalog API
//
// Product catalog with image uploads, a homepage carousel, customer
// enquiries and a contact form.
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
// - multipart/form-data
//
// Produces:
// - application/json
//
// SecurityDefinitions:
// bearer:
//
//	type: apiKey
//	name: Authorization
//	in: header
//
// swagger:meta
package http

import "github.com/kahvecikaan/catalog-api/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of strings
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body ValidationErrorResponse
}

// A confirmation message
// swagger:response messageResponse
type messageResponseWrapper struct {
	// in: body
	Body MessageResponse
}

// A page of products and the number of active products
// swagger:response productsResponse
type productsResponseWrapper struct {
	// in: body
	Body ProductsResponse
}

// Navigation links of products
// swagger:response navigationResponse
type navigationResponseWrapper struct {
	// in: body
	Body NavigationResponse
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// A single product
	// in: body
	Body domain.Product
}

// The new product and its public URL
// swagger:response createProductResponse
type createProductResponseWrapper struct {
	// in: body
	Body CreateProductResponse
}

// The updated product
// swagger:response productMessageResponse
type productMessageResponseWrapper struct {
	// in: body
	Body ProductMessageResponse
}

// The carousel after an upload
// swagger:response carouselResponse
type carouselResponseWrapper struct {
	// in: body
	Body CarouselResponse
}

// The carousel slides
// swagger:response carouselSlidesResponse
type carouselSlidesResponseWrapper struct {
	// in: body
	Body CarouselSlidesResponse
}

// The outcome of removing carousel images
// swagger:response carouselRemovalResponse
type carouselRemovalResponseWrapper struct {
	// in: body
	Body CarouselRemovalResponse
}

// The stored enquiry
// swagger:response enquiryResponse
type enquiryResponseWrapper struct {
	// in: body
	Body EnquiryResponse
}

// A page of enquiries
// swagger:response enquiriesResponse
type enquiriesResponseWrapper struct {
	// in: body
	Body domain.EnquiryPage
}

// Service health
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in: body
	Body HealthResponse
}

// swagger:parameters getProductByID updateProduct
type productIDParameterWrapper struct {
	// The id of the product
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters getProductByPageURL
type pageURLParameterWrapper struct {
	// The page URL slug of the product
	// in: path
	// required: true
	PageURL string `json:"pageUrl"`
}

// swagger:parameters removeCarouselSlides
type carouselIDParameterWrapper struct {
	// The id of the carousel
	// in: path
	// required: true
	ID string `json:"id"`

	// in: body
	Body RemoveCarouselImagesRequest
}

// swagger:parameters deleteEnquiry
type enquiryIDParameterWrapper struct {
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters submitEnquiry
type enquiryBodyParameterWrapper struct {
	// in: body
	// required: true
	Body EnquiryRequest
}

// swagger:parameters sendContactMessage
type contactBodyParameterWrapper struct {
	// in: body
	// required: true
	Body domain.ContactMessage
}

// swagger:parameters deleteProduct
type deleteProductParameterWrapper struct {
	// in: body
	// required: true
	Body DeleteProductRequest
}

// swagger:parameters listProducts listEnquiries
type pageParameterWrapper struct {
	// in: query
	Page int `json:"page"`
	// in: query
	Limit int `json:"limit"`
}

// swagger:parameters listNavigation
type navigationParameterWrapper struct {
	// in: query
	Skip int `json:"skip"`
	// in: query
	Limit int `json:"limit"`
}
