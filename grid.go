package glyphatlas

// GridAllocator hands out uniform atlas cells in row-major order.
// Every cell spans one glyph plus the padding on its top and left edge;
// the atlas closes the right and bottom edges with one more padding unit.
type GridAllocator struct {
	cols       int // Number of columns
	rows       int // Number of rows
	cellWidth  int // Horizontal cell pitch, padding included
	cellHeight int // Vertical cell pitch, padding included
	next       int // Next cell index
}

// NewGridAllocator creates a grid allocator for cols x rows cells of the
// given pitch.
func NewGridAllocator(cols, rows, cellWidth, cellHeight int) *GridAllocator {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &GridAllocator{
		cols:       cols,
		rows:       rows,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// Allocate returns the pixel origin of the next available cell.
// Returns -1, -1, false if the grid is full.
func (g *GridAllocator) Allocate() (x, y int, ok bool) {
	if g.IsFull() {
		return -1, -1, false
	}

	col := g.next % g.cols
	row := g.next / g.cols

	g.next++
	return col * g.cellWidth, row * g.cellHeight, true
}

// Reset clears all allocations.
func (g *GridAllocator) Reset() {
	g.next = 0
}

// Capacity returns the maximum number of cells that can be allocated.
func (g *GridAllocator) Capacity() int {
	return g.cols * g.rows
}

// Allocated returns the number of cells currently allocated.
func (g *GridAllocator) Allocated() int {
	return g.next
}

// Remaining returns the number of cells still available.
func (g *GridAllocator) Remaining() int {
	return g.Capacity() - g.next
}

// IsFull returns true if no more cells can be allocated.
func (g *GridAllocator) IsFull() bool {
	return g.next >= g.Capacity()
}

// Utilization returns the fraction of cells used (0.0 to 1.0).
func (g *GridAllocator) Utilization() float64 {
	capacity := g.Capacity()
	if capacity <= 0 {
		return 0
	}
	return float64(g.next) / float64(capacity)
}

// GridDimensions returns the number of columns and rows.
func (g *GridAllocator) GridDimensions() (cols, rows int) {
	return g.cols, g.rows
}
