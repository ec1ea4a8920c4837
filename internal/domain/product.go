package domain

import "time"

// Product is a catalog entry with its uploaded images
//
// swagger:model
type Product struct {
	// The generated ID of the product
	//
	// example: 665f1c2ab3e4d5f6a7b8c9d0
	ID string `json:"id"`

	// The title of the product
	//
	// required: true
	// example: Blue Chair
	Title string `json:"title"`

	// The description of the product
	//
	// required: true
	// example: A comfy blue chair
	Description string `json:"description"`

	// Relative paths of the product images, in display order
	//
	// example: ["/uploads/1718000000000-123456789-chair.jpg"]
	Images []string `json:"images"`

	// Unique URL-safe identifier derived from the title
	//
	// example: blue-chair
	PageURL string `json:"pageUrl"`

	// Creation time
	CreatedAt time.Time `json:"createdAt"`

	// Soft-delete marker. Deletion is permanent, so this is only ever set by
	// data written outside this service.
	IsDeleted bool `json:"isDeleted"`
}

// ProductLink is the lightweight projection used for navigation menus and
// for enquiry listings.
//
// swagger:model
type ProductLink struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	PageURL string `json:"pageUrl"`
}

// Link projects the product to its navigation fields
func (p *Product) Link() ProductLink {
	return ProductLink{ID: p.ID, Title: p.Title, PageURL: p.PageURL}
}

// HasImage reports whether path is one of the product images
func (p *Product) HasImage(path string) bool {
	for _, img := range p.Images {
		if img == path {
			return true
		}
	}
	return false
}
