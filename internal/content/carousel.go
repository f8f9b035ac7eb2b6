package content

// Carousel is the looping hero slider. Every slide change bumps ReplayKey so
// the view restarts its entrance animation; ticks tagged with an older key
// are stale.
type Carousel struct {
	slides    []Slide
	index     int
	replayKey int
}

func NewCarousel(slides []Slide) *Carousel {
	return &Carousel{slides: slides}
}

func (c *Carousel) Len() int       { return len(c.slides) }
func (c *Carousel) Index() int     { return c.index }
func (c *Carousel) ReplayKey() int { return c.replayKey }

func (c *Carousel) Current() Slide {
	if len(c.slides) == 0 {
		return Slide{}
	}
	return c.slides[c.index]
}

func (c *Carousel) Next() Slide {
	return c.GoTo(c.index + 1)
}

func (c *Carousel) Prev() Slide {
	return c.GoTo(c.index - 1)
}

// GoTo selects slide i, wrapping around both ends.
func (c *Carousel) GoTo(i int) Slide {
	n := len(c.slides)
	if n == 0 {
		return Slide{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	c.index = i
	c.replayKey++
	return c.slides[c.index]
}
