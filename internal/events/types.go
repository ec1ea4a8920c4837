package events

type ProductAdded struct {
	ProductID string `json:"product_id"`
	PageURL   string `json:"page_url"`
}

type ProductUpdated struct {
	ProductID string `json:"product_id"`
	PageURL   string `json:"page_url"`
}

type ProductDeleted struct {
	ProductID string `json:"product_id"`
	PageURL   string `json:"page_url"`
}

type CarouselUpdated struct {
	CarouselID string `json:"carousel_id"`
	Slides     int    `json:"slides"`
}

type EnquirySubmitted struct {
	EnquiryID string `json:"enquiry_id"`
	ProductID string `json:"product_id,omitempty"`
}
