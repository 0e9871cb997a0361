package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/imece/cost"
	"github.com/katalvlaran/imece/terrain"
)

// ShortestPath computes the minimum-cost route from start to end over g
// under the cost model p.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. p must validate (cost sentinels).
//  3. start must lie inside g (ErrStartOutOfBounds).
//  4. end must lie inside g (ErrEndOutOfBounds).
//
// Unreachable destinations and start == end are not errors: both return a
// Result with an empty Path and a nil error. A start at or above the ceiling
// is treated as unreachable: no route may contain an impassable cell, the
// origin included.
//
// A destination adjacent to start yields the two-cell Path [start, end].
// Callers that treat a single predecessor hop as "no path" must not: only
// an empty Path signals failure.
//
// Complexity:
//
//   - Time:  O(V log V), V = H×W.
//   - Space: O(V).
func ShortestPath(g *terrain.Grid, p cost.Params, start, end terrain.Cell, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before allocating any search state
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: %v", ErrEndOutOfBounds, end)
	}
	if start != end && !p.Passable(g.At(start)) {
		return Result{Cost: math.Inf(1)}, nil
	}

	// 3) Per-call working state
	n := g.Height() * g.Width()
	r := &runner{
		g:       g,
		params:  p,
		options: cfg,
		start:   g.Index(start),
		end:     g.Index(end),
		dist:    make([]float64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *terrain.Grid // read-only
	params  cost.Params
	options Options
	start   int       // row-major index of the origin
	end     int       // row-major index of the destination
	dist    []float64 // best known cost per cell
	prev    []int     // predecessor per cell, -1 for none
	settled []bool    // cost finalised
	pq      nodePQ
	seq     uint64 // next push stamp
	count   int    // settled cells
	buf     []terrain.Offset
}

// init sets every cost to +∞ and every predecessor to none, then seeds the
// heap with the origin at cost 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// process is the main loop. It stops when the heap empties, when the
// destination is settled, or when the cheapest entry exceeds MaxCost.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Stale entry from lazy decrease-key.
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}

		r.settled[u] = true
		r.count++
		if u == r.end {
			break
		}
		r.relax(u)
	}
}

// relax examines the passable neighbours of u in ascending elevation
// (direction rank on ties) and improves their costs through u.
func (r *runner) relax(u int) {
	cur := r.g.Coordinate(u)
	r.buf = r.g.Neighbors(cur, r.buf[:0])

	// Neighbors returns rank order; a stable sort keeps it for equal elevations.
	sort.SliceStable(r.buf, func(i, j int) bool {
		return r.g.At(cur.Step(r.buf[i].Dir)) < r.g.At(cur.Step(r.buf[j].Dir))
	})

	for _, o := range r.buf {
		next := cur.Step(o.Dir)
		if !r.params.Passable(r.g.At(next)) {
			continue
		}
		v := r.g.Index(next)
		if r.settled[v] {
			continue
		}

		newDist := r.dist[u] + r.params.StepCost(r.g, cur, next)
		if newDist > r.options.MaxCost {
			continue
		}
		// Strict: an equal-cost route found later never replaces the predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

func (r *runner) push(idx int, dist float64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: dist, seq: r.seq})
	r.seq++
}

// result walks predecessors back from end. A chain that never leaves end
// (unreachable, or start == end) yields the empty path.
func (r *runner) result() Result {
	res := Result{Cost: r.dist[r.end], Settled: r.count}
	if r.end == r.start || r.prev[r.end] < 0 {
		return res
	}

	var path []terrain.Cell
	for at := r.end; at >= 0; at = r.prev[at] {
		path = append(path, r.g.Coordinate(at))
	}
	// Reverse into start → end order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}

// nodeItem is one heap entry: a cell, the cost it was pushed with, and
// its push stamp.
type nodeItem struct {
	idx  int
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq). The seq tie-break
// makes equal-cost entries pop in push order regardless of heap internals.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by push stamp.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
