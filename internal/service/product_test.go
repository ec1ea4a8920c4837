package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductSlugs(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestProductService(t)

	input := CreateProductInput{Title: "Blue Chair", Description: "A comfortable chair", Images: []string{"/uploads/1.jpg"}}

	first, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "blue-chair", first.PageURL)
	assert.NotEmpty(t, first.ID)

	second, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Regexp(t, `^blue-chair-\d+$`, second.PageURL)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateProductRequiresImages(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestProductService(t)

	_, err := svc.CreateProduct(ctx, CreateProductInput{Title: "Blue Chair", Description: "A comfortable chair"})
	assert.ErrorIs(t, err, domain.ErrNoImages)
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestProductService(t)

	_, err := svc.CreateProduct(ctx, CreateProductInput{Title: "  ", Description: "desc", Images: []string{"/uploads/1.jpg"}})
	assert.ErrorIs(t, err, domain.ErrTitleRequired)

	_, err = svc.CreateProduct(ctx, CreateProductInput{Title: "!?.", Description: "desc", Images: []string{"/uploads/1.jpg"}})
	assert.ErrorIs(t, err, domain.ErrTitleNotSluggable)
}

func TestCreateProductSuffixCollisionIsConflict(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestProductService(t)
	svc.slugs.now = func() time.Time { return time.UnixMilli(1700000000123) }

	require.NoError(t, repo.Add(ctx, &domain.Product{Title: "Blue Chair", PageURL: "blue-chair", Images: []string{"/uploads/a.jpg"}}))
	require.NoError(t, repo.Add(ctx, &domain.Product{Title: "Blue Chair", PageURL: "blue-chair-1700000000123", Images: []string{"/uploads/b.jpg"}}))

	_, err := svc.CreateProduct(ctx, CreateProductInput{Title: "Blue Chair", Description: "A comfortable chair", Images: []string{"/uploads/c.jpg"}})
	assert.ErrorIs(t, err, domain.ErrPageURLTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestCreateProductPublishesEvent(t *testing.T) {
	ctx := context.Background()
	svc, _, _, bus := newTestProductService(t)

	sub := bus.Subscribe()
	defer bus.Unsubscribe(sub)

	p, err := svc.CreateProduct(ctx, CreateProductInput{Title: "Lamp", Description: "A bright lamp", Images: []string{"/uploads/l.jpg"}})
	require.NoError(t, err)

	select {
	case ev := <-sub:
		assert.Equal(t, events.ProductAdded{ProductID: p.ID, PageURL: "lamp"}, ev)
	default:
		t.Fatal("expected a product added event")
	}
}

func TestUpdateProductRemovesImages(t *testing.T) {
	ctx := context.Background()
	svc, _, store, _ := newTestProductService(t)

	a := putFile(t, store, "/uploads/a.jpg")
	b := putFile(t, store, "/uploads/b.jpg")
	other := putFile(t, store, "/uploads/other.jpg")

	p, err := svc.CreateProduct(ctx, CreateProductInput{Title: "Sofa", Description: "Three seater", Images: []string{a, b}})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, p.ID, UpdateProductInput{
		Title:         "Corner Sofa",
		RemovedImages: []string{a, other},
		NewImages:     []string{"/uploads/c.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Corner Sofa", updated.Title)
	assert.Equal(t, "Three seater", updated.Description)
	assert.Equal(t, []string{b, "/uploads/c.jpg"}, updated.Images)
	assert.Equal(t, "sofa", updated.PageURL)

	assert.False(t, fileExists(store, a))
	assert.True(t, fileExists(store, b))
	assert.True(t, fileExists(store, other), "files of other products must survive")

	got, err := svc.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Images, got.Images)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _, _, _ := newTestProductService(t)

	_, err := svc.UpdateProduct(context.Background(), "missing", UpdateProductInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc, _, store, _ := newTestProductService(t)

	a := putFile(t, store, "/uploads/a.jpg")
	b := putFile(t, store, "/uploads/b.jpg")

	p, err := svc.CreateProduct(ctx, CreateProductInput{Title: "Table", Description: "Oak table", Images: []string{a, b}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))

	assert.False(t, fileExists(store, a))
	assert.False(t, fileExists(store, b))

	_, err = svc.GetProductByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, p.ID), domain.ErrNotFound)
}

func TestListProductsExcludesDeleted(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestProductService(t)

	kept, err := svc.CreateProduct(ctx, CreateProductInput{Title: "Chair", Description: "Chair", Images: []string{"/uploads/c.jpg"}})
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, &domain.Product{Title: "Hidden", PageURL: "hidden", Images: []string{"/uploads/h.jpg"}, IsDeleted: true}))

	products, total, err := svc.ListProducts(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, kept.ID, products[0].ID)

	_, err = svc.GetProductByPageURL(ctx, "hidden")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	links, total, err := svc.ListNavigation(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []domain.ProductLink{kept.Link()}, links)
}

func TestListProductsPagination(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestProductService(t)

	for i := 1; i <= 25; i++ {
		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Title:       fmt.Sprintf("Product %d", i),
			Description: "description",
			Images:      []string{fmt.Sprintf("/uploads/%d.jpg", i)},
		})
		require.NoError(t, err)
	}

	products, total, err := svc.ListProducts(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, products, 10)
	assert.Equal(t, "product-25", products[0].PageURL, "newest first")
	assert.Equal(t, 3, domain.TotalPages(total, 10))

	products, _, err = svc.ListProducts(ctx, 3, 10)
	require.NoError(t, err)
	assert.Len(t, products, 5)
	assert.Equal(t, "product-1", products[4].PageURL)

	products, total, err = svc.ListProducts(ctx, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.EqualValues(t, 25, total)
}
