package service

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/kahvecikaan/catalog-api/internal/files"
	"github.com/kahvecikaan/catalog-api/internal/repository"
)

// ProductService manages catalog products together with their image files.
//
// Operations that touch both the asset store and the repository are not
// atomic. The filesystem change always happens first and the repository
// change second, with no rollback: a failure in between can leave a record
// pointing at a deleted file, or an uploaded file no record points at.
//
// UpdateProduct only deletes removed images that belong to the product.
// Paths the product does not own are logged and left in the asset store.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetProductByPageURL(ctx context.Context, pageURL string) (*domain.Product, error)
	ListProducts(ctx context.Context, page, limit int) (Products, int64, error)
	ListNavigation(ctx context.Context, skip, limit int) ([]domain.ProductLink, int64, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type Products []*domain.Product

// CreateProductInput carries a new product. Images are asset store paths of
// files that have already been uploaded.
type CreateProductInput struct {
	Title       string
	Description string
	Images      []string
}

// UpdateProductInput carries a partial update. Empty Title or Description
// keep the current value.
type UpdateProductInput struct {
	Title         string
	Description   string
	RemovedImages []string
	NewImages     []string
}

type productService struct {
	repo     repository.ProductRepository
	store    files.Storage
	slugs    *SlugGenerator
	eventBus *events.EventBus[any]
	logger   hclog.Logger
	now      func() time.Time
}

func NewProductService(
	repo repository.ProductRepository,
	store files.Storage,
	eventBus *events.EventBus[any],
	logger hclog.Logger) ProductService {
	return &productService{
		repo:     repo,
		store:    store,
		slugs:    NewSlugGenerator(repo),
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *productService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if len(input.Images) == 0 {
		return nil, domain.ErrNoImages
	}
	if title == "" || description == "" {
		return nil, domain.ErrTitleRequired
	}

	s.logger.Debug("Adding new product", "title", title, "images", len(input.Images))

	pageURL, err := s.slugs.Generate(ctx, title)
	if err != nil {
		s.logger.Error("Unable to generate page URL", "title", title, "error", err)
		return nil, err
	}
	if pageURL == "" {
		return nil, domain.ErrTitleNotSluggable
	}

	product := &domain.Product{
		Title:       title,
		Description: description,
		Images:      append([]string{}, input.Images...),
		PageURL:     pageURL,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Add(ctx, product); err != nil {
		s.logger.Error("Unable to add product", "title", title, "page_url", pageURL, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.ProductAdded{ProductID: product.ID, PageURL: product.PageURL})
	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	s.logger.Debug("Getting product by ID", "id", id)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("Unable to get the product by ID", "id", id, "error", err)
		return nil, err
	}

	return product, nil
}

func (s *productService) GetProductByPageURL(ctx context.Context, pageURL string) (*domain.Product, error) {
	s.logger.Debug("Getting product by page URL", "page_url", pageURL)

	product, err := s.repo.GetByPageURL(ctx, pageURL)
	if err != nil {
		s.logger.Debug("Unable to get the product by page URL", "page_url", pageURL, "error", err)
		return nil, err
	}

	return product, nil
}

// ListProducts pages through non-deleted products newest first. page and
// limit are used as given; an out of range page yields an empty list.
func (s *productService) ListProducts(ctx context.Context, page, limit int) (Products, int64, error) {
	s.logger.Debug("Getting products", "page", page, "limit", limit)

	products, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, 0, err
	}

	return products, total, nil
}

func (s *productService) ListNavigation(ctx context.Context, skip, limit int) ([]domain.ProductLink, int64, error) {
	s.logger.Debug("Getting navigation links", "skip", skip, "limit", limit)

	links, total, err := s.repo.ListNavigation(ctx, skip, limit)
	if err != nil {
		s.logger.Error("Unable to get navigation links", "error", err)
		return nil, 0, err
	}

	return links, total, nil
}

// UpdateProduct applies removals before additions. Removed paths that are not
// images of this product are ignored so a caller cannot delete another
// product's files.
func (s *productService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error) {
	s.logger.Debug("Updating product", "id", id)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("Unable to find product for update", "id", id, "error", err)
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		product.Title = title
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		product.Description = description
	}

	var removed []string
	for _, p := range input.RemovedImages {
		if product.HasImage(p) {
			removed = append(removed, p)
		} else {
			s.logger.Warn("Ignoring removal of image not owned by product", "id", id, "path", p)
		}
	}

	removeAssets(s.store, s.logger, removed)
	product.Images = append(without(product.Images, removed), input.NewImages...)

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Unable to update product", "id", id, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.ProductUpdated{ProductID: product.ID, PageURL: product.PageURL})
	return product, nil
}

// DeleteProduct removes the image files and then the record itself. The
// record is deleted permanently.
func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	s.logger.Debug("Deleting product", "id", id)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("Unable to find product for deletion", "id", id, "error", err)
		return err
	}

	removeAssets(s.store, s.logger, product.Images)

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Unable to delete product", "id", id, "error", err)
		return err
	}

	s.eventBus.Publish(events.ProductDeleted{ProductID: product.ID, PageURL: product.PageURL})
	return nil
}
