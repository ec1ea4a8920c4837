package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/kahvecikaan/catalog-api/internal/domain"
)

// EnquiryRepository is an append-only store of enquiries
type EnquiryRepository interface {
	// Add stores the enquiry and assigns its ID
	Add(ctx context.Context, enquiry *domain.Enquiry) error
	// List returns enquiries newest first with the total count
	List(ctx context.Context, skip, limit int) ([]*domain.Enquiry, int64, error)
	Delete(ctx context.Context, id string) error
}

type memoryEnquiryRepository struct {
	enquiries []*domain.Enquiry
	mutex     sync.RWMutex
}

func NewMemoryEnquiryRepository() EnquiryRepository {
	return &memoryEnquiryRepository{}
}

func (r *memoryEnquiryRepository) Add(ctx context.Context, enquiry *domain.Enquiry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	enquiry.ID = uuid.NewString()
	e := *enquiry
	r.enquiries = append(r.enquiries, &e)
	return nil
}

func (r *memoryEnquiryRepository) List(ctx context.Context, skip, limit int) ([]*domain.Enquiry, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]*domain.Enquiry, 0, len(r.enquiries))
	for i := len(r.enquiries) - 1; i >= 0; i-- {
		all = append(all, r.enquiries[i])
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	lo, hi := window(len(all), skip, limit)
	page := make([]*domain.Enquiry, 0, hi-lo)
	for _, e := range all[lo:hi] {
		cp := *e
		page = append(page, &cp)
	}

	return page, int64(len(all)), nil
}

func (r *memoryEnquiryRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, e := range r.enquiries {
		if e.ID == id {
			r.enquiries = append(r.enquiries[:i], r.enquiries[i+1:]...)
			return nil
		}
	}

	return domain.ErrEnquiryNotFound
}
