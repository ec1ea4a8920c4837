package domain

import "time"

// Enquiry is a customer's interest record, optionally tied to a product.
// Enquiries are never updated.
//
// swagger:model
type Enquiry struct {
	ID string `json:"id"`

	// The product the enquiry is about. Empty for general enquiries.
	ProductID string `json:"productId,omitempty"`

	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ContactNo string    `json:"contactNo"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnquiryView is an enquiry joined with the fields of its product that
// listings need. Product is nil when the enquiry is general or the product
// no longer exists.
type EnquiryView struct {
	Enquiry
	Product *ProductLink `json:"product"`
}

// EnquiryPage is one page of the enquiry listing
type EnquiryPage struct {
	Enquiries      []EnquiryView `json:"enquiries"`
	CurrentPage    int           `json:"currentPage"`
	TotalPages     int           `json:"totalPages"`
	TotalEnquiries int64         `json:"totalEnquiries"`
}

// TotalPages is ceil(total/limit), or 0 when limit is not positive
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
