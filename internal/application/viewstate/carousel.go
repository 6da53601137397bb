package viewstate

// Carousel cycles through slides, wrapping at both ends.
type Carousel[T any] struct {
	slides []T
	index  int
}

// NewCarousel creates a carousel on its first slide.
func NewCarousel[T any](slides []T) *Carousel[T] {
	return &Carousel[T]{slides: slides}
}

// Len returns the number of slides.
func (c *Carousel[T]) Len() int { return len(c.slides) }

// Index returns the position of the current slide.
func (c *Carousel[T]) Index() int { return c.index }

// Current returns the visible slide; ok is false when there are none.
func (c *Carousel[T]) Current() (slide T, ok bool) {
	if len(c.slides) == 0 {
		return slide, false
	}
	return c.slides[c.index], true
}

// Next advances one slide, wrapping to the first.
func (c *Carousel[T]) Next() {
	if n := len(c.slides); n > 0 {
		c.index = (c.index + 1) % n
	}
}

// Prev goes back one slide, wrapping to the last.
func (c *Carousel[T]) Prev() {
	if n := len(c.slides); n > 0 {
		c.index = (c.index - 1 + n) % n
	}
}
