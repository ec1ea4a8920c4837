package domain

import (
	"errors"
	"fmt"
)

// Error classes. Handlers map these to status codes with errors.Is.
var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Domain-level errors
var (
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrCarouselNotFound = fmt.Errorf("carousel slide %w", ErrNotFound)
	ErrEnquiryNotFound  = fmt.Errorf("enquiry %w", ErrNotFound)

	ErrPageURLTaken = fmt.Errorf("%w: pageUrl already exists", ErrConflict)

	ErrNoImages          = fmt.Errorf("%w: at least one image is required", ErrInvalid)
	ErrNoRemovedImages   = fmt.Errorf("%w: no images specified for deletion", ErrInvalid)
	ErrTitleRequired     = fmt.Errorf("%w: title and description are required", ErrInvalid)
	ErrTitleNotSluggable = fmt.Errorf("%w: title must contain at least one letter or digit", ErrInvalid)
)
