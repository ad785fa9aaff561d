package pbf

// cursor is a sequential read position over a Source's byte region.
// Exactly one cursor backs each Traversal; cursors are never shared, so
// concurrent traversals stay independent. Invariant: 0 <= pos <= size.
type cursor struct {
	src *Source
	pos int64
}

func (c *cursor) remaining() int64 {
	return c.src.m.size() - c.pos
}

// window returns the next n bytes and advances past them. The caller must
// have checked remaining() >= n.
func (c *cursor) window(n int64) ([]byte, error) {
	b, err := c.src.m.view(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// rewind reseeks to the first record. The only non-monotonic move a cursor
// ever makes.
func (c *cursor) rewind() {
	c.pos = 0
}
