package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/service"
)

type EnquiryHandler struct {
	enquiryService service.EnquiryService
	validator      *domain.Validation
	logger         hclog.Logger
}

func NewEnquiryHandler(es service.EnquiryService, validator *domain.Validation, log hclog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService: es,
		validator:      validator,
		logger:         log,
	}
}

// SubmitEnquiry handles POST /enquiries
//
// swagger:route POST /enquiries enquiries submitEnquiry
//
// Records a customer enquiry, optionally about a product.
//
// Responses:
//
//	201: enquiryResponse
//	400: validationErrorResponse
//	404: errorResponse
//	500: errorResponse
func (h *EnquiryHandler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	var req EnquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "Error submitting enquiry")
		return
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		writeError(w, h.logger, errs, "Error submitting enquiry")
		return
	}

	enquiry, err := h.enquiryService.SubmitEnquiry(r.Context(), service.EnquiryInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Email:     req.Email,
		ContactNo: req.ContactNo,
		Message:   req.Message,
	})
	if err != nil {
		writeError(w, h.logger, err, "Error submitting enquiry")
		return
	}

	writeJSON(w, http.StatusCreated, EnquiryResponse{Message: "Enquiry submitted successfully", Enquiry: enquiry})
}

// ListEnquiries handles GET /enquiries
//
// swagger:route GET /enquiries enquiries listEnquiries
//
// Returns a page of enquiries, newest first, with their products.
//
// Responses:
//
//	200: enquiriesResponse
//	401: errorResponse
//	500: errorResponse
func (h *EnquiryHandler) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	result, err := h.enquiryService.ListEnquiries(r.Context(), page, limit)
	if err != nil {
		writeError(w, h.logger, err, "Error fetching enquiries")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteEnquiry handles DELETE /enquiries/{id}
//
// swagger:route DELETE /enquiries/{id} enquiries deleteEnquiry
//
// Deletes an enquiry.
//
// Responses:
//
//	200: messageResponse
//	401: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *EnquiryHandler) DeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.enquiryService.DeleteEnquiry(r.Context(), id); err != nil {
		writeError(w, h.logger, err, "Error deleting enquiry")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Enquiry deleted successfully"})
}
