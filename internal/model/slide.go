package model

// SlidePair is one before/after comparison shown by the services slider.
type SlidePair struct {
	BeforeImage string   `json:"before_image"`
	AfterImage  string   `json:"after_image"`
	Title       string   `json:"title"`
	Formula     string   `json:"formula"`
	Details     []string `json:"details"`
}

// NewSlidePair copies details so later changes to the caller's slice do not
// leak into the pair.
func NewSlidePair(before, after, title, formula string, details ...string) SlidePair {
	return SlidePair{
		BeforeImage: before,
		AfterImage:  after,
		Title:       title,
		Formula:     formula,
		Details:     append([]string(nil), details...),
	}
}

// Clone returns a copy that shares no slice with p.
func (p SlidePair) Clone() SlidePair {
	p.Details = append([]string(nil), p.Details...)
	return p
}
