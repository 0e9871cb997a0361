package terrain

// FlyableRegions finds all 8-connected regions of cells whose elevation is
// strictly below ceiling. Each region is a slice of row-major indices in
// breadth-first discovery order; regions are ordered by their first cell in
// row-major scan order.
//
// To convert an index back to a Cell, use Coordinate.
//
// Time:   O(H·W·8).
// Memory: O(H·W) for visited flags and output.
func (g *Grid) FlyableRegions(ceiling int) [][]int {
	seen := make([]bool, g.height*g.width)
	var regions [][]int

	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] >= ceiling {
				continue // too high
			}
			i0 := g.index(Cell{r, c})
			if seen[i0] {
				continue
			}
			// BFS to collect region
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				for _, o := range offsets {
					v := Cell{Row: u.Row + o.DRow, Col: u.Col + o.DCol}
					if !g.InBounds(v) || g.cells[v.Row][v.Col] >= ceiling {
						continue
					}
					vi := g.index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// SameRegion reports whether a and b lie in the same flyable region under
// ceiling. A cell always reaches itself; otherwise both ends must be strictly
// below ceiling. Out-of-bounds cells are never connected.
func (g *Grid) SameRegion(a, b Cell, ceiling int) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if a == b {
		return true
	}
	if g.At(a) >= ceiling || g.At(b) >= ceiling {
		return false
	}
	target := g.index(b)
	seen := make([]bool, g.height*g.width)
	queue := []int{g.index(a)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		if queue[qi] == target {
			return true
		}
		u := g.Coordinate(queue[qi])
		for _, o := range offsets {
			v := Cell{Row: u.Row + o.DRow, Col: u.Col + o.DCol}
			if !g.InBounds(v) || g.cells[v.Row][v.Col] >= ceiling {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return false
}
