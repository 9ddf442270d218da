package core

import (
	"io"
	"iter"
)

// Triple holds three consecutive values, in stream order.
type Triple [3]uint32

// Chunker groups a ValueSource into triples.
//
// When the source ends cleanly with one or two values left over, those
// values are dropped and Next returns io.EOF; the partial group is not an
// error. Callers that need to tell a whole number of triples from a
// leftover can consult Dropped once Next has returned io.EOF.
type Chunker struct {
	source   ValueSource
	dropped  int
	finished bool
}

// NewChunker creates a chunker reading from source.
func NewChunker(source ValueSource) *Chunker {
	return &Chunker{source: source}
}

// Next returns the next complete triple. A source error is returned as is
// and ends the chunker: later calls return io.EOF.
func (c *Chunker) Next() (Triple, error) {
	var t Triple
	if c.finished {
		return t, io.EOF
	}

	for i := range t {
		v, err := c.source.Next()
		if err == io.EOF {
			c.finished = true
			c.dropped = i
			return Triple{}, io.EOF
		}
		if err != nil {
			c.finished = true
			return Triple{}, err
		}
		t[i] = v
	}
	return t, nil
}

// Dropped returns the number of trailing values (0, 1 or 2) discarded
// because the source ended inside a group.
func (c *Chunker) Dropped() int {
	return c.dropped
}

// All returns an iterator over the remaining triples. The iterator yields a
// non-nil error at most once, as its last element.
func (c *Chunker) All() iter.Seq2[Triple, error] {
	return func(yield func(Triple, error) bool) {
		for {
			t, err := c.Next()
			if err == io.EOF {
				return
			}
			if !yield(t, err) || err != nil {
				return
			}
		}
	}
}
