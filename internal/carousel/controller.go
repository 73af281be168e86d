package carousel

// Controller owns the current slide index of one carousel.
// The index always satisfies 0 <= index < count, or is 0 when count is 0.
type Controller struct {
	index int
	count int
}

// Index returns the current slide index.
func (c *Controller) Index() int {
	return c.index
}

// Count returns the number of slides.
func (c *Controller) Count() int {
	return c.count
}

// Rendered reports whether there is anything to draw.
func (c *Controller) Rendered() bool {
	return c.count > 0
}

// Navigable reports whether manual or timed navigation has any effect.
func (c *Controller) Navigable() bool {
	return c.count > 1
}

// SetCount updates the slide count. A different count forces the index back
// to 0 and reports true.
func (c *Controller) SetCount(n int) bool {
	if n < 0 {
		n = 0
	}
	if n == c.count {
		return false
	}
	c.count = n
	c.index = 0
	return true
}

// Advance moves to the next slide, wrapping at the end.
func (c *Controller) Advance() bool {
	if !c.Navigable() {
		return false
	}
	c.index = (c.index + 1) % c.count
	return true
}

// Retreat moves to the previous slide, wrapping at the start.
func (c *Controller) Retreat() bool {
	if !c.Navigable() {
		return false
	}
	c.index = (c.index - 1 + c.count) % c.count
	return true
}

// GoTo jumps to slide i. Out-of-range indexes are ignored.
func (c *Controller) GoTo(i int) bool {
	if i < 0 || i >= c.count {
		return false
	}
	c.index = i
	return true
}
