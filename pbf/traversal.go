package pbf

import (
	"errors"
	"io"
	"iter"
)

type traversalState uint8

const (
	stateNotStarted traversalState = iota
	stateInProgress
	stateExhausted
	stateFailed
	stateClosed
)

// Traversal is a forward-only, restartable pass over a Source's blobs.
//
// A Traversal is single-goroutine; for concurrent scans create one
// Traversal per goroutine from the same Source. Close releases the
// cursor's claim on the Source and is safe in any state, including after
// a failed read.
type Traversal struct {
	cur   *cursor
	state traversalState
	err   error
}

// Next returns the next blob in file order.
//
// It returns io.EOF once the stream is exhausted; exhaustion is not an
// error and Reset makes the sequence available again. Any framing or
// validation failure is terminal: subsequent calls return the same error
// without re-reading.
func (t *Traversal) Next() (*Blob, error) {
	switch t.state {
	case stateClosed:
		return nil, ErrClosed
	case stateExhausted:
		return nil, io.EOF
	case stateFailed:
		return nil, t.err
	}
	if t.cur.src.closed {
		return nil, ErrClosed
	}

	b, err := readBlob(t.cur)
	switch {
	case errors.Is(err, io.EOF):
		t.state = stateExhausted
		return nil, io.EOF
	case err != nil:
		t.state = stateFailed
		t.err = err
		return nil, err
	}
	t.state = stateInProgress
	return b, nil
}

// Reset reseeks to the first record so the next Next replays the sequence
// from the start. Also clears a terminal error state.
func (t *Traversal) Reset() error {
	if t.state == stateClosed {
		return ErrClosed
	}
	t.cur.rewind()
	t.state = stateNotStarted
	t.err = nil
	return nil
}

// Close disposes the traversal. Idempotent; always succeeds, including
// after a failed read. Next and Reset return ErrClosed afterwards.
func (t *Traversal) Close() error {
	t.cur = nil
	t.err = nil
	t.state = stateClosed
	return nil
}

// All returns an iterator over the remaining blobs.
//
// Iteration stops silently at end of stream and yields a final (nil, err)
// pair on failure. The Traversal still needs Close.
func (t *Traversal) All() iter.Seq2[*Blob, error] {
	return func(yield func(*Blob, error) bool) {
		for {
			b, err := t.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(b, err) || err != nil {
				return
			}
		}
	}
}
