package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kahvecikaan/catalog-api/internal/auth"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/kahvecikaan/catalog-api/internal/files"
	"github.com/kahvecikaan/catalog-api/internal/mail"
	"github.com/kahvecikaan/catalog-api/internal/repository"
	"github.com/kahvecikaan/catalog-api/internal/service"
	httpTransport "github.com/kahvecikaan/catalog-api/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/catalog-api/internal/transport/websocket"
	"github.com/nicholasjackson/env"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	logFile = env.String("LOG_FILE", false,
		"", "Optional file that receives a rotated copy of the log")
	store = env.String("STORE", false,
		"memory", "Persistence backend [memory, mongo]")
	mongoURI = env.String("MONGODB_URI", false,
		"mongodb://localhost:27017", "MongoDB connection string")
	mongoDatabase = env.String("MONGODB_DATABASE", false,
		"catalog", "MongoDB database name")
	dbTimeout = env.Duration("DB_TIMEOUT", false,
		repository.DefaultTimeout, "Timeout for a single database operation")
	assetDir = env.String("ASSET_DIR", false,
		"./public", "Directory that holds uploaded images")
	maxUploadBytes = env.Int("MAX_UPLOAD_BYTES", false,
		5*1024*1024, "Maximum size of a single uploaded image in bytes")
	authSecret = env.String("AUTH_SECRET", false,
		"", "HMAC secret for admin bearer tokens")
	corsOrigins = env.String("CORS_ORIGINS", false,
		"*", "Comma separated list of allowed CORS origins")
	smtpHost = env.String("SMTP_HOST", false,
		"smtp.gmail.com", "SMTP relay host")
	smtpPort = env.Int("SMTP_PORT", false,
		587, "SMTP relay port")
	smtpUser = env.String("SMTP_USER", false,
		"", "SMTP user, also used as the sender address")
	smtpPassword = env.String("SMTP_PASSWORD", false,
		"", "SMTP password")
	contactEmail = env.String("CONTACT_EMAIL", false,
		"", "Recipient of contact form messages")
	publicURL = env.String("PUBLIC_URL", false,
		"", "Public base URL used in links to new products")
	docsSpec = env.String("DOCS_SPEC", false,
		"./swagger.yaml", "Path of the swagger document served at /swagger.yaml")
)

// repositories bundles the persistence backend chosen at startup
type repositories struct {
	products  repository.ProductRepository
	carousels repository.CarouselRepository
	enquiries repository.EnquiryRepository
	close     func(context.Context) error
}

func main() {
	// A missing .env file is fine; the environment may be set elsewhere
	godotenv.Load()
	env.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "catalog-api",
		Level:  hclog.LevelFromString(*logLevel),
		Output: logOutput(*logFile),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	if *authSecret == "" {
		logger.Warn("AUTH_SECRET is not set, admin endpoints will reject every request")
	}

	repos, err := openRepositories(logger)
	if err != nil {
		logger.Error("Unable to open the store", "store", *store, "error", err)
		os.Exit(1)
	}

	assets, err := files.NewLocal(*assetDir, int64(*maxUploadBytes))
	if err != nil {
		logger.Error("Unable to create asset storage", "path", *assetDir, "error", err)
		os.Exit(1)
	}

	// Initialize the event bus - this will be shared between services
	eventBus := events.NewEventBus[any]()
	validator := domain.NewValidation()

	ps := service.NewProductService(repos.products, assets, eventBus, logger.Named("product-service"))
	cs := service.NewCarouselService(repos.carousels, assets, eventBus, logger.Named("carousel-service"))
	es := service.NewEnquiryService(repos.enquiries, repos.products, eventBus, logger.Named("enquiry-service"))
	ns := service.NewContactNotifier(newMailer(logger), *contactEmail, validator, logger.Named("contact-notifier"))

	handlerLog := logger.Named("http-handler")
	uploader := httpTransport.NewUploader(assets, int64(*maxUploadBytes), logger.Named("uploader"))

	router := httpTransport.NewRouter(
		httpTransport.Handlers{
			Products:  httpTransport.NewProductHandler(ps, uploader, validator, *publicURL, handlerLog),
			Carousel:  httpTransport.NewCarouselHandler(cs, uploader, handlerLog),
			Enquiries: httpTransport.NewEnquiryHandler(es, validator, handlerLog),
			Contact:   httpTransport.NewContactHandler(ns, handlerLog),
			Files:     httpTransport.NewFilesHandler(assets, handlerLog),
			Events:    websocketTransport.NewHandler(logger.Named("websocket-handler"), eventBus),
		},
		httpTransport.NewMiddleware(
			logger.Named("http"),
			auth.NewTokenVerifier(*authSecret),
			httpTransport.CORSConfigFromOrigins(*corsOrigins),
		),
		*docsSpec,
		logger,
	)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  60 * time.Second, // multipart uploads of several images
		WriteTimeout: 30 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress, "store", *store)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", "error", err)
	}

	if err := repos.close(shutdownCtx); err != nil {
		logger.Error("Error closing the store", "error", err)
	}
}

// logOutput writes to stderr and, when path is set, to a rotated log file
func logOutput(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}

	return io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    64, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
	})
}

func openRepositories(logger hclog.Logger) (*repositories, error) {
	switch *store {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := repository.ConnectMongo(ctx, *mongoURI)
		if err != nil {
			return nil, err
		}

		db := client.Database(*mongoDatabase)
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			client.Disconnect(context.Background())
			return nil, err
		}

		logger.Info("Connected to MongoDB", "database", *mongoDatabase)
		return mongoRepositories(client, db), nil
	default:
		if *store != "memory" {
			logger.Warn("Unknown store, falling back to memory", "store", *store)
		}
		return &repositories{
			products:  repository.NewMemoryProductRepository(),
			carousels: repository.NewMemoryCarouselRepository(),
			enquiries: repository.NewMemoryEnquiryRepository(),
			close:     func(context.Context) error { return nil },
		}, nil
	}
}

func mongoRepositories(client *mongo.Client, db *mongo.Database) *repositories {
	return &repositories{
		products:  repository.NewMongoProductRepository(db, *dbTimeout),
		carousels: repository.NewMongoCarouselRepository(db, *dbTimeout),
		enquiries: repository.NewMongoEnquiryRepository(db, *dbTimeout),
		close:     client.Disconnect,
	}
}

// newMailer sends through SMTP when credentials are configured and logs
// messages otherwise
func newMailer(logger hclog.Logger) service.Mailer {
	if *smtpUser == "" || *smtpPassword == "" {
		logger.Warn("SMTP credentials are not set, contact messages will only be logged")
		return mail.NewLogSender(logger.Named("mail"))
	}
	return mail.NewSMTPSender(*smtpHost, *smtpPort, *smtpUser, *smtpPassword)
}
