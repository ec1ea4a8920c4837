package service

import (
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/files"
)

// removeAssets deletes each path from the store. Failures are logged and the
// remaining paths are still attempted; a stale file is preferable to a
// blocked catalog operation.
func removeAssets(store files.Storage, logger hclog.Logger, paths []string) {
	for _, p := range paths {
		if err := store.Delete(p); err != nil {
			logger.Warn("Unable to delete image file", "path", p, "error", err)
		}
	}
}

// without returns images minus every entry in removed, keeping order
func without(images, removed []string) []string {
	drop := make(map[string]struct{}, len(removed))
	for _, r := range removed {
		drop[r] = struct{}{}
	}

	kept := make([]string, 0, len(images))
	for _, img := range images {
		if _, ok := drop[img]; !ok {
			kept = append(kept, img)
		}
	}
	return kept
}
