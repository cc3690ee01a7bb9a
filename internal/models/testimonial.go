package models

// Testimonial est un avis client affiché dans le slider de la vitrine.
type Testimonial struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
}
