package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minGridDim = 1

// Grid returns the edge stream of a rows x cols 4-neighborhood grid:
// node (r, c) is ID r*cols+c, with an edge to its east and south
// neighbor wherever one exists, emitted in row-major order.
func Grid(rows, cols uint32) (csr.SliceEdges, uint32, error) {
	if rows < minGridDim {
		return nil, 0, fmt.Errorf("topogen.Grid: rows=%d < min=%d: %w", rows, minGridDim, ErrTooFewNodes)
	}
	if cols < minGridDim {
		return nil, 0, fmt.Errorf("topogen.Grid: cols=%d < min=%d: %w", cols, minGridDim, ErrTooFewNodes)
	}

	var edges csr.SliceEdges
	for r := uint32(0); r < rows; r++ {
		for c := uint32(0); c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				edges = append(edges, [2]uint32{u, u + 1})
			}
			if r+1 < rows {
				edges = append(edges, [2]uint32{u, u + cols})
			}
		}
	}
	return edges, rows * cols, nil
}
