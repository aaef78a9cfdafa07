// Package chunks computes chunk plans for streaming n-dimensional arrays.
//
// A plan divides an array of a given shape into equal rectangular chunks.
// The image writers stream one chunk at a time so peak memory stays
// proportional to a single chunk rather than the whole array.
package chunks

import "fmt"

// Plan describes how an array shape is divided into chunks.
type Plan struct {
	shape      []int
	chunkShape []int
}

// New creates a chunk plan for the given array and chunk shapes.
// The two shapes must have the same rank, every chunk dimension must be
// positive and no larger than the array dimension, and each chunk
// dimension must divide its array dimension evenly so that all chunks are
// the same size.
func New(shape, chunkShape []int) (*Plan, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("empty array shape")
	}
	if len(chunkShape) != len(shape) {
		return nil, fmt.Errorf("chunk rank %d does not match array rank %d",
			len(chunkShape), len(shape))
	}
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("axis %d has non-positive length %d", i, dim)
		}
		c := chunkShape[i]
		if c <= 0 || c > dim {
			return nil, fmt.Errorf("axis %d chunk length %d outside [1, %d]", i, c, dim)
		}
		if dim%c != 0 {
			return nil, fmt.Errorf("axis %d chunk length %d does not divide %d", i, c, dim)
		}
	}

	p := &Plan{
		shape:      append([]int(nil), shape...),
		chunkShape: append([]int(nil), chunkShape...),
	}
	return p, nil
}

// Shape returns the array shape.
func (p *Plan) Shape() []int {
	return append([]int(nil), p.shape...)
}

// ChunkShape returns the shape of one chunk.
func (p *Plan) ChunkShape() []int {
	return append([]int(nil), p.chunkShape...)
}

// Grid returns the number of chunks along each axis.
func (p *Plan) Grid() []int {
	grid := make([]int, len(p.shape))
	for i := range p.shape {
		grid[i] = p.shape[i] / p.chunkShape[i]
	}
	return grid
}

// Count returns the total number of chunks.
func (p *Plan) Count() int {
	count := 1
	for _, g := range p.Grid() {
		count *= g
	}
	return count
}

// ChunkElems returns the number of elements in one chunk.
func (p *Plan) ChunkElems() int {
	n := 1
	for _, c := range p.chunkShape {
		n *= c
	}
	return n
}

// TotalElems returns the number of elements in the whole array.
func (p *Plan) TotalElems() int {
	n := 1
	for _, d := range p.shape {
		n *= d
	}
	return n
}

// ChunkBytes returns the size of one chunk for the given element size.
func (p *Plan) ChunkBytes(elemSize int) int {
	return p.ChunkElems() * elemSize
}
