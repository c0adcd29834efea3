// Package score tracks the points earned from merges.
package score

// Counter accumulates merge rewards for one game.
type Counter struct {
	value int
	best  int
}

// NewCounter creates a counter at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Add increases the score by n.
func (c *Counter) Add(n int) {
	c.value += n
	c.best = max(c.best, c.value)
}

// Set replaces the score, e.g. when rolling back to a snapshot.
func (c *Counter) Set(n int) {
	c.value = n
}

// Reset sets the score back to zero. Best is kept.
func (c *Counter) Reset() {
	c.value = 0
}

// Value returns the current score.
func (c *Counter) Value() int {
	return c.value
}

// Best returns the highest score reached since the counter was created.
func (c *Counter) Best() int {
	return c.best
}
