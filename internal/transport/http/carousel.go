package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/service"
)

type CarouselHandler struct {
	carouselService service.CarouselService
	uploader        *Uploader
	logger          hclog.Logger
}

func NewCarouselHandler(cs service.CarouselService, uploader *Uploader, log hclog.Logger) *CarouselHandler {
	return &CarouselHandler{
		carouselService: cs,
		uploader:        uploader,
		logger:          log,
	}
}

// AddSlides handles POST /carousel
//
// swagger:route POST /carousel carousel addCarouselSlides
//
// Appends up to five uploaded images to the homepage carousel.
//
// Responses:
//
//	201: carouselResponse
//	400: errorResponse
//	401: errorResponse
//	500: errorResponse
func (h *CarouselHandler) AddSlides(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeError(w, h.logger, err, "Error updating carousel")
		return
	}
	if imageCount(r) == 0 {
		writeError(w, h.logger, domain.ErrNoImages, "Error updating carousel")
		return
	}

	images, err := h.uploader.SaveImages(r, carouselImages)
	if err != nil {
		writeError(w, h.logger, err, "Error saving images")
		return
	}

	carousel, err := h.carouselService.AddImages(r.Context(), images)
	if err != nil {
		writeError(w, h.logger, err, "Error updating carousel")
		return
	}

	writeJSON(w, http.StatusCreated, CarouselResponse{Message: "Carousel updated successfully", Carousel: carousel})
}

// GetSlides handles GET /carousel
//
// swagger:route GET /carousel carousel getCarouselSlides
//
// Returns the carousel slides. The list is empty when no carousel exists.
//
// Responses:
//
//	200: carouselSlidesResponse
//	500: errorResponse
func (h *CarouselHandler) GetSlides(w http.ResponseWriter, r *http.Request) {
	carousel, err := h.carouselService.GetImages(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Error fetching carousel slides")
		return
	}

	slides := carousel.Images
	if slides == nil {
		slides = []string{}
	}
	writeJSON(w, http.StatusOK, CarouselSlidesResponse{Success: true, Slides: slides, ID: carousel.ID})
}

// RemoveSlides handles DELETE /carousel/{id}
//
// swagger:route DELETE /carousel/{id} carousel removeCarouselSlides
//
// Removes images from the carousel. The carousel is deleted with its last
// image.
//
// Responses:
//
//	200: carouselRemovalResponse
//	400: errorResponse
//	401: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *CarouselHandler) RemoveSlides(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req RemoveCarouselImagesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "Error deleting carousel images")
		return
	}

	carousel, deleted, err := h.carouselService.RemoveImages(r.Context(), id, req.RemovedImages)
	if err != nil {
		writeError(w, h.logger, err, "Error deleting carousel images")
		return
	}

	if deleted {
		writeJSON(w, http.StatusOK, CarouselRemovalResponse{Message: "Carousel slide deleted successfully"})
		return
	}
	writeJSON(w, http.StatusOK, CarouselRemovalResponse{Message: "Image(s) deleted successfully", UpdatedSlide: carousel})
}
