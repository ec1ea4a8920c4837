package service

import (
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/events"
	"github.com/kahvecikaan/catalog-api/internal/files"
	"github.com/kahvecikaan/catalog-api/internal/repository"
	"github.com/stretchr/testify/require"
)

// tickingClock returns a clock that advances one second per call
func tickingClock() func() time.Time {
	t := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T) *files.Local {
	store, err := files.NewLocal(t.TempDir(), 1024)
	require.NoError(t, err)
	return store
}

// putFile stores a small placeholder image at path
func putFile(t *testing.T, store files.Storage, path string) string {
	require.NoError(t, store.Save(path, strings.NewReader("image bytes")))
	return path
}

func fileExists(store files.Storage, path string) bool {
	f, err := store.Get(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func newTestProductService(t *testing.T) (*productService, repository.ProductRepository, *files.Local, *events.EventBus[any]) {
	repo := repository.NewMemoryProductRepository()
	store := newTestStore(t)
	bus := events.NewEventBus[any]()

	svc := NewProductService(repo, store, bus, hclog.NewNullLogger()).(*productService)
	svc.now = tickingClock()
	return svc, repo, store, bus
}
