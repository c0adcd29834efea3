package score

import "testing"

func TestCounter(t *testing.T) {
	c := NewCounter()

	c.Add(4)
	c.Add(8)
	if c.Value() != 12 {
		t.Errorf("Value() = %d, want 12", c.Value())
	}

	c.Set(4)
	if c.Value() != 4 {
		t.Errorf("Value() after Set = %d, want 4", c.Value())
	}
	if c.Best() != 12 {
		t.Errorf("Best() = %d, want 12", c.Best())
	}

	c.Reset()
	c.Add(2)
	if c.Value() != 2 {
		t.Errorf("Value() after Reset = %d, want 2", c.Value())
	}
	if c.Best() != 12 {
		t.Errorf("Best() after Reset = %d, want 12", c.Best())
	}
}
