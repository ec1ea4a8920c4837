package http

import (
	"net/http"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	websocketTransport "github.com/kahvecikaan/catalog-api/internal/transport/websocket"
)

// Handlers groups the resource handlers mounted by NewRouter
type Handlers struct {
	Products  *ProductHandler
	Carousel  *CarouselHandler
	Enquiries *EnquiryHandler
	Contact   *ContactHandler
	Files     *FilesHandler
	Events    *websocketTransport.Handler
}

// NewRouter wires every route. docsSpec is the path of the swagger document
// served at /swagger.yaml and rendered at /docs.
func NewRouter(h Handlers, mw *Middleware, docsSpec string, logger hclog.Logger) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// Public routes
	getRouter := router.Methods(http.MethodGet).Subrouter()
	getRouter.HandleFunc("/products", h.Products.GetProducts)
	getRouter.HandleFunc("/products/navigation", h.Products.GetNavigation)
	getRouter.HandleFunc("/products/by-id/{id}", h.Products.GetProductByID)
	getRouter.HandleFunc("/products/by-url/{pageUrl}", h.Products.GetProductByPageURL)
	getRouter.HandleFunc("/carousel", h.Carousel.GetSlides)
	getRouter.HandleFunc("/uploads/{file}", h.Files.ProductImage)
	getRouter.HandleFunc("/carousel/{file}", h.Files.CarouselImage)
	getRouter.HandleFunc("/ws", h.Events.HandleWebSocket)
	getRouter.HandleFunc("/health", health)

	router.HandleFunc("/enquiries", h.Enquiries.SubmitEnquiry).Methods(http.MethodPost)
	router.HandleFunc("/contact", h.Contact.SendMessage).Methods(http.MethodPost)

	// Admin routes require a bearer token
	adminRouter := router.NewRoute().Subrouter()
	adminRouter.Use(mw.AuthMiddleware)
	adminRouter.HandleFunc("/products", h.Products.AddProduct).Methods(http.MethodPost)
	adminRouter.HandleFunc("/products/delete", h.Products.DeleteProduct).Methods(http.MethodPost)
	adminRouter.HandleFunc("/products/{id}", h.Products.UpdateProduct).Methods(http.MethodPut)
	adminRouter.HandleFunc("/carousel", h.Carousel.AddSlides).Methods(http.MethodPost)
	adminRouter.HandleFunc("/carousel/{id}", h.Carousel.RemoveSlides).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/enquiries", h.Enquiries.ListEnquiries).Methods(http.MethodGet)
	adminRouter.HandleFunc("/enquiries/{id}", h.Enquiries.DeleteEnquiry).Methods(http.MethodDelete)

	// Swagger specification and the Redoc UI rendering it
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		http.ServeFile(w, r, docsSpec)
	}).Methods(http.MethodGet)

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	router.Handle("/docs", middleware.Redoc(swaggerOpts, nil)).Methods(http.MethodGet)

	// Preflight requests are answered by CORS and never reach the router
	recoveryLog := logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLog),
		handlers.PrintRecoveryStack(true),
	)(handlers.CompressHandler(mw.CORSMiddleware(router)))
}

// health handles GET /health
//
// swagger:route GET /health health healthCheck
//
// Reports that the service is up.
//
// Responses:
//
//	200: healthResponse
func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "UP"})
}
