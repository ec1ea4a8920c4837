package service

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/kahvecikaan/catalog-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnquiryService(t *testing.T) (*enquiryService, repository.EnquiryRepository, repository.ProductRepository) {
	enquiries := repository.NewMemoryEnquiryRepository()
	products := repository.NewMemoryProductRepository()
	svc := NewEnquiryService(enquiries, products, events.NewEventBus[any](), hclog.NewNullLogger()).(*enquiryService)
	svc.now = tickingClock()
	return svc, enquiries, products
}

func validEnquiry(productID string) EnquiryInput {
	return EnquiryInput{
		ProductID: productID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		ContactNo: "9876543210",
		Message:   "Is this available in walnut?",
	}
}

func TestSubmitEnquiryUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, enquiries, _ := newTestEnquiryService(t)

	_, err := svc.SubmitEnquiry(ctx, validEnquiry("missing"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, total, err := enquiries.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total, "nothing is stored for an unknown product")
}

func TestListEnquiriesJoinsProducts(t *testing.T) {
	ctx := context.Background()
	svc, _, products := newTestEnquiryService(t)

	chair := &domain.Product{Title: "Blue Chair", PageURL: "blue-chair", Images: []string{"/uploads/c.jpg"}}
	require.NoError(t, products.Add(ctx, chair))

	general, err := svc.SubmitEnquiry(ctx, validEnquiry(""))
	require.NoError(t, err)
	about, err := svc.SubmitEnquiry(ctx, validEnquiry(chair.ID))
	require.NoError(t, err)
	assert.Equal(t, chair.ID, about.ProductID)

	page, err := svc.ListEnquiries(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.EqualValues(t, 2, page.TotalEnquiries)
	require.Len(t, page.Enquiries, 2)

	assert.Equal(t, about.ID, page.Enquiries[0].ID, "newest first")
	require.NotNil(t, page.Enquiries[0].Product)
	assert.Equal(t, domain.ProductLink{ID: chair.ID, Title: "Blue Chair", PageURL: "blue-chair"}, *page.Enquiries[0].Product)

	assert.Equal(t, general.ID, page.Enquiries[1].ID)
	assert.Nil(t, page.Enquiries[1].Product)
}

func TestListEnquiriesPagination(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestEnquiryService(t)

	for i := 0; i < 7; i++ {
		_, err := svc.SubmitEnquiry(ctx, validEnquiry(""))
		require.NoError(t, err)
	}

	page, err := svc.ListEnquiries(ctx, 2, 5)
	require.NoError(t, err)
	assert.Len(t, page.Enquiries, 2)
	assert.Equal(t, 2, page.TotalPages)
	assert.EqualValues(t, 7, page.TotalEnquiries)

	page, err = svc.ListEnquiries(ctx, 3, 5)
	require.NoError(t, err)
	assert.Empty(t, page.Enquiries)
	assert.Equal(t, 3, page.CurrentPage)
}

func TestDeleteEnquiry(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestEnquiryService(t)

	e, err := svc.SubmitEnquiry(ctx, validEnquiry(""))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEnquiry(ctx, e.ID))
	assert.ErrorIs(t, svc.DeleteEnquiry(ctx, e.ID), domain.ErrNotFound)
}
