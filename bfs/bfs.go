// Package bfs computes depth-bounded reachability over a core.Graph,
// returning the reached vertices, their hop distances, and per-depth counts.
package bfs

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/hopreach/core"
)

// queueItem pairs a vertex index with its hop distance.
type queueItem struct {
	idx   int32
	depth int32
}

// marks is a generation-stamped visited set, reused across calls through
// markPool so a traversal does not allocate O(V) memory every time.
type marks struct {
	gen   uint32
	stamp []uint32
}

var markPool = sync.Pool{New: func() any { return &marks{} }}

// acquire returns a marks sized for n vertices with a fresh generation.
func acquire(n int) *marks {
	m := markPool.Get().(*marks)
	if len(m.stamp) < n {
		m.stamp = make([]uint32, n)
		m.gen = 0
	}
	m.gen++
	if m.gen == 0 {
		clear(m.stamp)
		m.gen = 1
	}

	return m
}

func (m *marks) seen(i int32) bool { return m.stamp[i] == m.gen }
func (m *marks) mark(i int32)      { m.stamp[i] = m.gen }

// walker encapsulates mutable traversal state.
type walker struct {
	graph    *core.Graph
	opts     Options
	done     <-chan struct{}
	maxDepth int32
	queue    []queueItem
	visited  *marks
	res      *Result
}

// Reach returns every vertex within maxDepth hops of start, start included.
//
// The frontier is processed first-in-first-out, so the first time a vertex is
// reached its depth is its shortest hop distance. Neighbors are expanded only
// while depth < maxDepth. A vertex is marked when enqueued, which keeps the
// queue at most V long and makes self-loops and cycles terminate.
//
// An unknown start yields the singleton {start}. Returns ErrGraphNil,
// ErrOptionViolation for a negative maxDepth, the context error on
// cancellation, or a wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func Reach(g *core.Graph, start string, maxDepth int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	withDepth(maxDepth)(&o)
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Start: start}
	if !o.CountOnly {
		res.Depth = make(map[string]int)
	}

	si, ok := g.Index(start)
	if !ok {
		// isolated singleton outside the vertex universe
		res.Layers = []int{1}
		res.total = 1
		if !o.CountOnly {
			res.Order = []string{start}
			res.Depth[start] = 0
		}
		if err := o.ctxErr(); err != nil {
			return nil, err
		}
		if o.OnVisit != nil {
			if err := o.OnVisit(start, 0); err != nil {
				return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", start, err)
			}
		}
		return res, nil
	}

	w := &walker{
		graph:    g,
		opts:     o,
		done:     o.Ctx.Done(),
		maxDepth: int32(min(maxDepth, g.VertexCount())),
		queue:    make([]queueItem, 0, 64),
		visited:  acquire(g.VertexCount()),
		res:      res,
	}
	defer markPool.Put(w.visited)

	w.enqueue(int32(si), 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

func (o *Options) ctxErr() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

// enqueue marks idx visited at depth d and appends it to the queue.
func (w *walker) enqueue(idx, d int32) {
	w.visited.mark(idx)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop drains the queue in FIFO order until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if w.done != nil {
			select {
			case <-w.done:
				return w.opts.Ctx.Err()
			default:
			}
		}

		item := w.queue[head]
		if err := w.visit(item); err != nil {
			return err
		}
		if item.depth < w.maxDepth {
			for _, nbr := range w.graph.NeighborIndices(int(item.idx)) {
				if !w.visited.seen(nbr) {
					w.enqueue(nbr, item.depth+1)
				}
			}
		}
	}

	return nil
}

// visit records the vertex in the result and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	d := int(item.depth)
	for len(w.res.Layers) <= d {
		w.res.Layers = append(w.res.Layers, 0)
	}
	w.res.Layers[d]++
	w.res.total++

	if w.opts.CountOnly && w.opts.OnVisit == nil {
		return nil
	}
	id := w.graph.ID(int(item.idx))
	if !w.opts.CountOnly {
		w.res.Order = append(w.res.Order, id)
		w.res.Depth[id] = d
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}
	}

	return nil
}

// ReachCount is Reach in count-only mode, returning |reach(g, start, maxDepth)|.
func ReachCount(ctx context.Context, g *core.Graph, start string, maxDepth int) (int, error) {
	res, err := Reach(g, start, maxDepth, WithContext(ctx), WithCountOnly())
	if err != nil {
		return 0, err
	}

	return res.Len(), nil
}
