package http

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/files"
)

// imagesField is the multipart field that carries uploaded images
const imagesField = "images"

// multipartMemory is how much of a multipart body is buffered in memory
// before the rest spills to temporary files.
const multipartMemory = 32 << 20

var (
	ErrNotMultipart   = fmt.Errorf("%w: request must be multipart/form-data", domain.ErrInvalid)
	ErrTooManyImages  = fmt.Errorf("%w: too many images", domain.ErrInvalid)
	ErrImageTooLarge  = fmt.Errorf("%w: image exceeds the maximum upload size", domain.ErrInvalid)
	ErrNotAnImage     = fmt.Errorf("%w: only image files (jpeg, png, webp, jpg) are allowed", domain.ErrInvalid)
	unsafeNameChars   = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}
)

// uploadTarget is a directory in the asset store together with the number of
// files one request may put there.
type uploadTarget struct {
	prefix   string
	maxFiles int
}

var (
	productImages  = uploadTarget{prefix: "/uploads", maxFiles: 10}
	carouselImages = uploadTarget{prefix: "/carousel", maxFiles: 5}
)

// Uploader moves images from multipart requests into the asset store
type Uploader struct {
	store    files.Storage
	maxBytes int64
	logger   hclog.Logger
	now      func() time.Time
}

func NewUploader(store files.Storage, maxBytes int64, logger hclog.Logger) *Uploader {
	return &Uploader{
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
		now:      time.Now,
	}
}

// parseForm parses a multipart request body
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return ErrNotMultipart
	}
	if err != nil {
		return fmt.Errorf("%w: unable to parse form", domain.ErrInvalid)
	}
	return nil
}

// imageCount returns how many files the parsed form carries in the images field
func imageCount(r *http.Request) int {
	if r.MultipartForm == nil {
		return 0
	}
	return len(r.MultipartForm.File[imagesField])
}

// SaveImages stores every file of the images field of a parsed multipart
// form under target and returns the stored paths in upload order. Either all
// files are stored or none are.
func (u *Uploader) SaveImages(r *http.Request, target uploadTarget) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[imagesField]
	if len(headers) > target.maxFiles {
		return nil, fmt.Errorf("%w: at most %d are allowed", ErrTooManyImages, target.maxFiles)
	}

	paths := make([]string, 0, len(headers))
	for _, fh := range headers {
		stored, err := u.saveImage(fh, target)
		if err != nil {
			u.logger.Error("Unable to save uploaded image", "filename", fh.Filename, "error", err)
			for _, p := range paths {
				u.store.Delete(p)
			}
			return nil, err
		}
		paths = append(paths, stored)
	}

	return paths, nil
}

func (u *Uploader) saveImage(fh *multipart.FileHeader, target uploadTarget) (string, error) {
	if u.maxBytes > 0 && fh.Size > u.maxBytes {
		return "", ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return "", ErrNotAnImage
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	stored := target.prefix + "/" + u.fileName(fh.Filename)
	u.logger.Debug("Saving uploaded image", "filename", fh.Filename, "path", stored, "type", mtype.String())

	err = u.store.Save(stored, f)
	if errors.Is(err, files.ErrTooLarge) {
		return "", ErrImageTooLarge
	}
	if err != nil {
		return "", err
	}

	return stored, nil
}

// fileName builds a collision resistant name that still carries the
// client's original file name.
func (u *Uploader) fileName(original string) string {
	base := unsafeNameChars.ReplaceAllString(path.Base(strings.ReplaceAll(original, `\`, "/")), "_")
	if base == "" || base == "." || base == "/" {
		base = "image"
	}
	return fmt.Sprintf("%d-%d-%s", u.now().UnixMilli(), rand.IntN(1_000_000_000), base)
}
