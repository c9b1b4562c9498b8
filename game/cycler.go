package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indices in the current direction of play.
type Cycler struct {
	size      int
	current   int
	direction int
}

// NewCycler starts at seat 0 playing to the left, like the original table.
func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: left,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek returns the seat that Next would move to.
func (c *Cycler) Peek() int {
	return (c.current + c.direction + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
