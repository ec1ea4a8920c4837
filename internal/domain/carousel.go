package domain

import "time"

// HomepageCarouselID is the fixed identifier of the homepage carousel. There
// is exactly one carousel per deployment and it is always addressed by this ID.
const HomepageCarouselID = "homepage"

// Carousel holds the ordered homepage slides
//
// swagger:model
type Carousel struct {
	ID        string    `json:"id"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasImage reports whether path is one of the carousel's slides
func (c *Carousel) HasImage(path string) bool {
	for _, img := range c.Images {
		if img == path {
			return true
		}
	}
	return false
}
