package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/kahvecikaan/catalog-api/internal/domain"
)

// ProductRepository persists catalog products. Implementations enforce that
// PageURL is unique across every stored product, deleted or not.
type ProductRepository interface {
	// Add stores a new product and assigns its ID. It returns
	// domain.ErrPageURLTaken when the page URL is already in use.
	Add(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// GetByPageURL only returns products that are not soft-deleted
	GetByPageURL(ctx context.Context, pageURL string) (*domain.Product, error)
	PageURLExists(ctx context.Context, pageURL string) (bool, error)
	// List returns non-deleted products newest first, together with the
	// total number of non-deleted products.
	List(ctx context.Context, skip, limit int) ([]*domain.Product, int64, error)
	ListNavigation(ctx context.Context, skip, limit int) ([]domain.ProductLink, int64, error)
	// Links resolves product IDs to their navigation fields. Unknown IDs are
	// left out of the result.
	Links(ctx context.Context, ids []string) (map[string]domain.ProductLink, error)
	// Update replaces the title, description and images of a product
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type memoryProductRepository struct {
	products []*domain.Product
	mutex    sync.RWMutex
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{}
}

func (r *memoryProductRepository) Add(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, p := range r.products {
		if p.PageURL == product.PageURL {
			return domain.ErrPageURLTaken
		}
	}

	product.ID = uuid.NewString()
	r.products = append(r.products, cloneProduct(product))
	return nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			return cloneProduct(product), nil
		}
	}

	return nil, domain.ErrProductNotFound
}

func (r *memoryProductRepository) GetByPageURL(ctx context.Context, pageURL string) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.PageURL == pageURL && !product.IsDeleted {
			return cloneProduct(product), nil
		}
	}

	return nil, domain.ErrProductNotFound
}

func (r *memoryProductRepository) PageURLExists(ctx context.Context, pageURL string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.PageURL == pageURL {
			return true, nil
		}
	}

	return false, nil
}

func (r *memoryProductRepository) List(ctx context.Context, skip, limit int) ([]*domain.Product, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	active := r.activeNewestFirst()
	lo, hi := window(len(active), skip, limit)

	page := make([]*domain.Product, 0, hi-lo)
	for _, p := range active[lo:hi] {
		page = append(page, cloneProduct(p))
	}

	return page, int64(len(active)), nil
}

func (r *memoryProductRepository) ListNavigation(ctx context.Context, skip, limit int) ([]domain.ProductLink, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	active := r.activeNewestFirst()
	lo, hi := window(len(active), skip, limit)

	links := make([]domain.ProductLink, 0, hi-lo)
	for _, p := range active[lo:hi] {
		links = append(links, p.Link())
	}

	return links, int64(len(active)), nil
}

func (r *memoryProductRepository) Links(ctx context.Context, ids []string) (map[string]domain.ProductLink, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	links := make(map[string]domain.ProductLink)
	for _, p := range r.products {
		if _, ok := wanted[p.ID]; ok {
			links[p.ID] = p.Link()
		}
	}

	return links, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, p := range r.products {
		if p.ID == product.ID {
			p.Title = product.Title
			p.Description = product.Description
			p.Images = append([]string{}, product.Images...)
			return nil
		}
	}

	return domain.ErrProductNotFound
}

func (r *memoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, product := range r.products {
		if product.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}

	return domain.ErrProductNotFound
}

// activeNewestFirst must be called with the lock held. Products created at
// the same instant keep reverse insertion order.
func (r *memoryProductRepository) activeNewestFirst() []*domain.Product {
	active := make([]*domain.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		if !r.products[i].IsDeleted {
			active = append(active, r.products[i])
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	return active
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	c.Images = append([]string{}, p.Images...)
	return &c
}

// window converts skip/limit into slice bounds over n items. A negative skip
// is treated as zero and a non-positive limit selects nothing.
func window(n, skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if skip > n || limit <= 0 {
		return n, n
	}
	hi := skip + limit
	if hi > n {
		hi = n
	}
	return skip, hi
}
