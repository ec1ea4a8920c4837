package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UP", decode[HealthResponse](t, rec).Status)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/products"},
		{http.MethodPut, "/products/abc"},
		{http.MethodPost, "/products/delete"},
		{http.MethodPost, "/carousel"},
		{http.MethodDelete, "/carousel/homepage"},
		{http.MethodGet, "/enquiries"},
		{http.MethodDelete, "/enquiries/abc"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.target, func(t *testing.T) {
			rec := ts.do(rt.method, rt.target, strings.NewReader("{}"), "application/json", false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotEmpty(t, decode[ErrorResponse](t, rec).Error)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req := newRequest(http.MethodOptions, "/products")
	req.Header.Set("Origin", "http://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := serve(ts, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestProductLifecycle(t *testing.T) {
	ts := newTestServer(t)

	body, ct := multipartBody(t,
		map[string]string{"title": "Blue Chair", "description": "A comfortable blue chair"},
		upload{name: "front.png", data: pngBytes},
		upload{name: "side view.jpg", data: jpegBytes})

	rec := ts.do(http.MethodPost, "/products", body, ct, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[CreateProductResponse](t, rec)
	assert.Equal(t, "Product created successfully", created.Message)
	assert.Equal(t, "http://example.com/products/blue-chair", created.URL)
	require.Len(t, created.Product.Images, 2)
	assert.Regexp(t, `^/uploads/\d+-\d+-front\.png$`, created.Product.Images[0])
	assert.Regexp(t, `^/uploads/\d+-\d+-side_view\.jpg$`, created.Product.Images[1])

	front, side := created.Product.Images[0], created.Product.Images[1]

	// uploaded files are served back with a sniffed content type
	rec = ts.do(http.MethodGet, front, nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, pngBytes, rec.Body.Bytes())

	rec = ts.do(http.MethodGet, "/products/by-url/blue-chair", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.Product.ID, decode[domain.Product](t, rec).ID)

	rec = ts.do(http.MethodGet, "/products/by-id/"+created.Product.ID, nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/products?page=1&limit=10", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[ProductsResponse](t, rec)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Products, 1)

	rec = ts.do(http.MethodGet, "/products/navigation", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	nav := decode[NavigationResponse](t, rec)
	assert.Equal(t, []domain.ProductLink{{ID: created.Product.ID, Title: "Blue Chair", PageURL: "blue-chair"}}, nav.Products)

	// update: drop the front image, add a new one
	removed, _ := json.Marshal([]string{front})
	body, ct = multipartBody(t,
		map[string]string{"title": "Navy Chair", "removedImages": string(removed)},
		upload{name: "back.png", data: pngBytes})

	rec = ts.do(http.MethodPut, "/products/"+created.Product.ID, body, ct, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[ProductMessageResponse](t, rec)
	assert.Equal(t, "Product updated successfully", updated.Message)
	assert.Equal(t, "Navy Chair", updated.Product.Title)
	assert.Equal(t, "A comfortable blue chair", updated.Product.Description)
	require.Len(t, updated.Product.Images, 2)
	assert.Equal(t, side, updated.Product.Images[0])

	rec = ts.do(http.MethodGet, front, nil, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// delete
	rec = ts.do(http.MethodPost, "/products/delete", jsonBody(t, DeleteProductRequest{ProductID: created.Product.ID}), "application/json", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Product deleted successfully", decode[MessageResponse](t, rec).Message)

	rec = ts.do(http.MethodGet, side, nil, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodGet, "/products/by-id/"+created.Product.ID, nil, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decode[ErrorResponse](t, rec).Error)

	rec = ts.do(http.MethodPost, "/products/delete", jsonBody(t, DeleteProductRequest{ProductID: created.Product.ID}), "application/json", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductDuplicateTitle(t *testing.T) {
	ts := newTestServer(t)

	first := ts.createProduct(t, "Oak Table")
	second := ts.createProduct(t, "Oak Table")

	assert.Equal(t, "oak-table", first.PageURL)
	assert.Regexp(t, `^oak-table-\d+$`, second.PageURL)
}

func TestCreateProductValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		fields  map[string]string
		images  []upload
		wantErr string
	}{
		{
			name:    "no images",
			fields:  map[string]string{"title": "Lamp", "description": "A bright lamp"},
			wantErr: "At least one image is required",
		},
		{
			name:    "missing description",
			fields:  map[string]string{"title": "Lamp"},
			images:  []upload{{name: "a.png", data: pngBytes}},
			wantErr: "Title and description are required",
		},
		{
			name:    "not an image",
			fields:  map[string]string{"title": "Lamp", "description": "A bright lamp"},
			images:  []upload{{name: "a.png", data: []byte("just some text")}},
			wantErr: "Only image files (jpeg, png, webp, jpg) are allowed",
		},
		{
			name:    "too many images",
			fields:  map[string]string{"title": "Lamp", "description": "A bright lamp"},
			images:  manyImages(11),
			wantErr: "Too many images: at most 10 are allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, tt.fields, tt.images...)
			rec := ts.do(http.MethodPost, "/products", body, ct, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, decode[ErrorResponse](t, rec).Error)
		})
	}

	rec := ts.do(http.MethodGet, "/products", nil, "", false)
	assert.EqualValues(t, 0, decode[ProductsResponse](t, rec).Total)
}

func TestCreateProductRequiresMultipart(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/products", strings.NewReader(`{"title":"x"}`), "application/json", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductByPageURL(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/products/by-url/ab", nil, "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decode[ValidationErrorResponse](t, rec).Errors)

	rec = ts.do(http.MethodGet, "/products/by-url/Blue_Chair", nil, "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/products/by-url/no-such-product", nil, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProductValidation(t *testing.T) {
	ts := newTestServer(t)
	p := ts.createProduct(t, "Bookshelf")

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"malformed removedImages", map[string]string{"removedImages": "not-json"}},
		{"removedImages not strings", map[string]string{"removedImages": "[1,2]"}},
		{"short title", map[string]string{"title": "ab"}},
		{"short description", map[string]string{"description": "too short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, tt.fields)
			rec := ts.do(http.MethodPut, "/products/"+p.ID, body, ct, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	body, ct := multipartBody(t, map[string]string{"title": "Tall Bookshelf"})
	rec := ts.do(http.MethodPut, "/products/unknown", body, ct, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProductsPagination(t *testing.T) {
	ts := newTestServer(t)
	for _, title := range []string{"Chair One", "Chair Two", "Chair Three"} {
		ts.createProduct(t, title)
	}

	rec := ts.do(http.MethodGet, "/products?page=2&limit=2", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[ProductsResponse](t, rec)
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Products, 1)

	rec = ts.do(http.MethodGet, "/products?page=5&limit=2", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"products":[],"total":3}`, strings.TrimSpace(rec.Body.String()))

	rec = ts.do(http.MethodGet, "/products/navigation?skip=2&limit=5", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[NavigationResponse](t, rec).Products, 1)
}

func TestListProductsDegenerateRanges(t *testing.T) {
	ts := newTestServer(t)
	for _, title := range []string{"Chair One", "Chair Two", "Chair Three"} {
		ts.createProduct(t, title)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"/products?page=0&limit=abc", 3},
		{"/products?page=-1&limit=2", 2},
		{"/products?limit=-3", 0},
		{"/products/navigation?skip=-5", 3},
		{"/products/navigation?limit=-1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := ts.do(http.MethodGet, tt.query, nil, "", false)
			require.Equal(t, http.StatusOK, rec.Code)
			if strings.HasPrefix(tt.query, "/products/navigation") {
				assert.Len(t, decode[NavigationResponse](t, rec).Products, tt.want)
				return
			}
			page := decode[ProductsResponse](t, rec)
			assert.Len(t, page.Products, tt.want)
			assert.EqualValues(t, 3, page.Total)
		})
	}
}
