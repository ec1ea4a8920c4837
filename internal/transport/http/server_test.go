package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/auth"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/kahvecikaan/catalog-api/internal/files"
	"github.com/kahvecikaan/catalog-api/internal/mail"
	"github.com/kahvecikaan/catalog-api/internal/repository"
	"github.com/kahvecikaan/catalog-api/internal/service"
	websocketTransport "github.com/kahvecikaan/catalog-api/internal/transport/websocket"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01")
)

type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type testServer struct {
	handler http.Handler
	token   string
	mailer  *recordingMailer
}

func newTestServer(t *testing.T) *testServer {
	logger := hclog.NewNullLogger()
	validation := domain.NewValidation()
	bus := events.NewEventBus[any]()

	store, err := files.NewLocal(t.TempDir(), 1<<20)
	require.NoError(t, err)

	products := repository.NewMemoryProductRepository()
	mailer := &recordingMailer{}
	verifier := auth.NewTokenVerifier("test-secret")

	token, err := verifier.Issue("admin", time.Hour)
	require.NoError(t, err)

	uploader := NewUploader(store, 1<<20, logger)
	h := Handlers{
		Products: NewProductHandler(
			service.NewProductService(products, store, bus, logger), uploader, validation, "", logger),
		Carousel: NewCarouselHandler(
			service.NewCarouselService(repository.NewMemoryCarouselRepository(), store, bus, logger), uploader, logger),
		Enquiries: NewEnquiryHandler(
			service.NewEnquiryService(repository.NewMemoryEnquiryRepository(), products, bus, logger), validation, logger),
		Contact: NewContactHandler(
			service.NewContactNotifier(mailer, "owner@example.com", validation, logger), logger),
		Files:  NewFilesHandler(store, logger),
		Events: websocketTransport.NewHandler(logger, bus),
	}

	return &testServer{
		handler: NewRouter(h, NewMiddleware(logger, verifier, nil), "swagger.yaml", logger),
		token:   token,
		mailer:  mailer,
	}
}

type upload struct {
	name string
	data []byte
}

func multipartBody(t *testing.T, fields map[string]string, images ...upload) (io.Reader, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, img := range images {
		part, err := mw.CreateFormFile(imagesField, img.name)
		require.NoError(t, err)
		_, err = part.Write(img.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// do sends a request through the full router. Admin requests carry the
// test token.
func (ts *testServer) do(method, target string, body io.Reader, contentType string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	return serve(ts, req)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// createProduct posts a product with one png image and returns it
func (ts *testServer) createProduct(t *testing.T, title string) *domain.Product {
	body, ct := multipartBody(t,
		map[string]string{"title": title, "description": "A well made piece of furniture"},
		upload{name: "photo.png", data: pngBytes})

	rec := ts.do(http.MethodPost, "/products", body, ct, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[CreateProductResponse](t, rec).Product
}

func manyImages(n int) []upload {
	images := make([]upload, n)
	for i := range images {
		images[i] = upload{name: fmt.Sprintf("%d.png", i), data: pngBytes}
	}
	return images
}

var errSMTP = errors.New("smtp unavailable")

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(ts *testServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}
