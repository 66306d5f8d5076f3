package tui

// carousel is the primitive the slideshow wraps: a bounded index with
// optional wraparound. It knows nothing about rendering or timing.
type carousel struct {
	index  int
	length int
	loop   bool
}

func newCarousel(length, initial int, loop bool) carousel {
	if length < 1 {
		length = 1
	}
	if initial < 0 {
		initial = 0
	}
	if initial >= length {
		initial = length - 1
	}
	return carousel{index: initial, length: length, loop: loop}
}

func (c *carousel) Index() int { return c.index }
func (c *carousel) Len() int   { return c.length }

// Next advances one slide. Reports whether the index moved; at the end of a
// non-looping carousel it does not.
func (c *carousel) Next() bool {
	if c.index == c.length-1 {
		if !c.loop {
			return false
		}
		c.index = 0
		return true
	}
	c.index++
	return true
}

func (c *carousel) Prev() bool {
	if c.index == 0 {
		if !c.loop {
			return false
		}
		c.index = c.length - 1
		return true
	}
	c.index--
	return true
}

func (c *carousel) To(i int) bool {
	if i < 0 || i >= c.length || i == c.index {
		return false
	}
	c.index = i
	return true
}

func (c *carousel) AtEnd() bool { return c.index == c.length-1 }
