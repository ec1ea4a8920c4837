package service

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/kahvecikaan/catalog-api/internal/repository"
)

// EnquiryService records customer enquiries and lists them for the admin
type EnquiryService interface {
	SubmitEnquiry(ctx context.Context, input EnquiryInput) (*domain.Enquiry, error)
	ListEnquiries(ctx context.Context, page, limit int) (*domain.EnquiryPage, error)
	DeleteEnquiry(ctx context.Context, id string) error
}

// EnquiryInput is an already validated enquiry. ProductID is optional.
type EnquiryInput struct {
	ProductID string
	Name      string
	Email     string
	ContactNo string
	Message   string
}

type enquiryService struct {
	repo     repository.EnquiryRepository
	products repository.ProductRepository
	eventBus *events.EventBus[any]
	logger   hclog.Logger
	now      func() time.Time
}

func NewEnquiryService(
	repo repository.EnquiryRepository,
	products repository.ProductRepository,
	eventBus *events.EventBus[any],
	logger hclog.Logger) EnquiryService {
	return &enquiryService{
		repo:     repo,
		products: products,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// SubmitEnquiry stores the enquiry. When a product is referenced it must
// exist; otherwise nothing is stored.
func (s *enquiryService) SubmitEnquiry(ctx context.Context, input EnquiryInput) (*domain.Enquiry, error) {
	productID := strings.TrimSpace(input.ProductID)

	s.logger.Debug("Submitting enquiry", "product_id", productID)

	if productID != "" {
		if _, err := s.products.GetByID(ctx, productID); err != nil {
			s.logger.Debug("Enquiry references unknown product", "product_id", productID, "error", err)
			return nil, err
		}
	}

	enquiry := &domain.Enquiry{
		ProductID: productID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		ContactNo: strings.TrimSpace(input.ContactNo),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: s.now(),
	}

	if err := s.repo.Add(ctx, enquiry); err != nil {
		s.logger.Error("Unable to add enquiry", "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.EnquirySubmitted{EnquiryID: enquiry.ID, ProductID: enquiry.ProductID})
	return enquiry, nil
}

// ListEnquiries returns one page of enquiries, newest first, each joined with
// the title and page URL of its product.
func (s *enquiryService) ListEnquiries(ctx context.Context, page, limit int) (*domain.EnquiryPage, error) {
	s.logger.Debug("Getting enquiries", "page", page, "limit", limit)

	enquiries, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("Unable to get enquiries", "error", err)
		return nil, err
	}

	var ids []string
	for _, e := range enquiries {
		if e.ProductID != "" {
			ids = append(ids, e.ProductID)
		}
	}

	links := map[string]domain.ProductLink{}
	if len(ids) > 0 {
		links, err = s.products.Links(ctx, ids)
		if err != nil {
			s.logger.Error("Unable to get enquiry products", "error", err)
			return nil, err
		}
	}

	views := make([]domain.EnquiryView, 0, len(enquiries))
	for _, e := range enquiries {
		view := domain.EnquiryView{Enquiry: *e}
		if link, ok := links[e.ProductID]; ok {
			view.Product = &link
		}
		views = append(views, view)
	}

	return &domain.EnquiryPage{
		Enquiries:      views,
		CurrentPage:    page,
		TotalPages:     domain.TotalPages(total, limit),
		TotalEnquiries: total,
	}, nil
}

func (s *enquiryService) DeleteEnquiry(ctx context.Context, id string) error {
	s.logger.Debug("Deleting enquiry", "id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Debug("Unable to delete enquiry", "id", id, "error", err)
		return err
	}

	return nil
}
