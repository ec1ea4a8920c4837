package service

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/kahvecikaan/catalog-api/internal/files"
	"github.com/kahvecikaan/catalog-api/internal/repository"
)

// CarouselService manages the homepage carousel. There is a single carousel,
// created on the first upload and deleted when its last image is removed.
// RemoveImages ignores paths that are not part of the carousel.
type CarouselService interface {
	AddImages(ctx context.Context, paths []string) (*domain.Carousel, error)
	// GetImages returns an empty carousel, with no ID, when none exists yet
	GetImages(ctx context.Context) (*domain.Carousel, error)
	// RemoveImages reports deleted as true when the last image was removed
	// and the carousel record went with it. Otherwise the updated carousel
	// is returned.
	RemoveImages(ctx context.Context, id string, paths []string) (carousel *domain.Carousel, deleted bool, err error)
}

type carouselService struct {
	repo     repository.CarouselRepository
	store    files.Storage
	eventBus *events.EventBus[any]
	logger   hclog.Logger
	now      func() time.Time
}

func NewCarouselService(
	repo repository.CarouselRepository,
	store files.Storage,
	eventBus *events.EventBus[any],
	logger hclog.Logger) CarouselService {
	return &carouselService{
		repo:     repo,
		store:    store,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *carouselService) AddImages(ctx context.Context, paths []string) (*domain.Carousel, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoImages
	}

	s.logger.Debug("Adding carousel images", "count", len(paths))

	carousel, err := s.repo.AppendImages(ctx, domain.HomepageCarouselID, paths, s.now())
	if err != nil {
		s.logger.Error("Unable to add carousel images", "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.CarouselUpdated{CarouselID: carousel.ID, Slides: len(carousel.Images)})
	return carousel, nil
}

func (s *carouselService) GetImages(ctx context.Context) (*domain.Carousel, error) {
	carousel, err := s.repo.Get(ctx, domain.HomepageCarouselID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Carousel{Images: []string{}}, nil
	}
	if err != nil {
		s.logger.Error("Unable to get carousel", "error", err)
		return nil, err
	}

	return carousel, nil
}

func (s *carouselService) RemoveImages(ctx context.Context, id string, paths []string) (*domain.Carousel, bool, error) {
	if len(paths) == 0 {
		return nil, false, domain.ErrNoRemovedImages
	}

	s.logger.Debug("Removing carousel images", "id", id, "count", len(paths))

	carousel, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Debug("Unable to find carousel", "id", id, "error", err)
		return nil, false, err
	}

	var removed []string
	for _, p := range paths {
		if carousel.HasImage(p) {
			removed = append(removed, p)
		} else {
			s.logger.Warn("Ignoring removal of image not in carousel", "id", id, "path", p)
		}
	}

	removeAssets(s.store, s.logger, removed)
	carousel.Images = without(carousel.Images, removed)

	if len(carousel.Images) == 0 {
		if err := s.repo.Delete(ctx, id); err != nil {
			s.logger.Error("Unable to delete carousel", "id", id, "error", err)
			return nil, false, err
		}
		s.eventBus.Publish(events.CarouselUpdated{CarouselID: id})
		return nil, true, nil
	}

	if err := s.repo.SetImages(ctx, id, carousel.Images); err != nil {
		s.logger.Error("Unable to update carousel", "id", id, "error", err)
		return nil, false, err
	}

	s.eventBus.Publish(events.CarouselUpdated{CarouselID: id, Slides: len(carousel.Images)})
	return carousel, false, nil
}
