package http

import (
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/files"
)

// FilesHandler serves stored images back to clients
type FilesHandler struct {
	store  files.Storage
	logger hclog.Logger
}

func NewFilesHandler(store files.Storage, log hclog.Logger) *FilesHandler {
	return &FilesHandler{store: store, logger: log}
}

// ProductImage handles GET /uploads/{file}
func (f *FilesHandler) ProductImage(w http.ResponseWriter, r *http.Request) {
	f.serve(productImages.prefix+"/"+mux.Vars(r)["file"], w, r)
}

// CarouselImage handles GET /carousel/{file}
func (f *FilesHandler) CarouselImage(w http.ResponseWriter, r *http.Request) {
	f.serve(carouselImages.prefix+"/"+mux.Vars(r)["file"], w, r)
}

func (f *FilesHandler) serve(path string, w http.ResponseWriter, r *http.Request) {
	file, err := f.store.Get(path)
	if err != nil {
		f.logger.Debug("Unable to get the file", "path", path, "error", err)
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "File not found"})
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "File not found"})
		return
	}

	contentType := "application/octet-stream"
	if mtype, err := mimetype.DetectReader(file); err == nil {
		contentType = mtype.String()
	} else {
		f.logger.Error("Unable to detect content type", "path", path, "error", err)
	}
	w.Header().Set("Content-Type", contentType)

	// ServeContent seeks back to the start and handles range requests
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
