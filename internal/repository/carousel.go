package repository

import (
	"context"
	"sync"
	"time"

	"github.com/kahvecikaan/catalog-api/internal/domain"
)

// CarouselRepository persists carousels by their fixed identifier
type CarouselRepository interface {
	Get(ctx context.Context, id string) (*domain.Carousel, error)
	// AppendImages adds paths to the end of the carousel, creating it with
	// the given creation time when it does not exist yet.
	AppendImages(ctx context.Context, id string, paths []string, createdAt time.Time) (*domain.Carousel, error)
	// SetImages replaces the images of an existing carousel
	SetImages(ctx context.Context, id string, images []string) error
	Delete(ctx context.Context, id string) error
}

type memoryCarouselRepository struct {
	carousels map[string]*domain.Carousel
	mutex     sync.RWMutex
}

func NewMemoryCarouselRepository() CarouselRepository {
	return &memoryCarouselRepository{carousels: make(map[string]*domain.Carousel)}
}

func (r *memoryCarouselRepository) Get(ctx context.Context, id string) (*domain.Carousel, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	c, ok := r.carousels[id]
	if !ok {
		return nil, domain.ErrCarouselNotFound
	}
	return cloneCarousel(c), nil
}

func (r *memoryCarouselRepository) AppendImages(ctx context.Context, id string, paths []string, createdAt time.Time) (*domain.Carousel, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	c, ok := r.carousels[id]
	if !ok {
		c = &domain.Carousel{ID: id, Images: []string{}, CreatedAt: createdAt}
		r.carousels[id] = c
	}
	c.Images = append(c.Images, paths...)

	return cloneCarousel(c), nil
}

func (r *memoryCarouselRepository) SetImages(ctx context.Context, id string, images []string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	c, ok := r.carousels[id]
	if !ok {
		return domain.ErrCarouselNotFound
	}
	c.Images = append([]string{}, images...)
	return nil
}

func (r *memoryCarouselRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.carousels[id]; !ok {
		return domain.ErrCarouselNotFound
	}
	delete(r.carousels, id)
	return nil
}

func cloneCarousel(c *domain.Carousel) *domain.Carousel {
	cp := *c
	cp.Images = append([]string{}, c.Images...)
	return &cp
}
