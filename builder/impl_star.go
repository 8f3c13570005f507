package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star on n vertices: the hub idFn(0) joined
// to the leaves idFn(1) .. idFn(n-1).
func Star(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		s.AddVertex(hub)
		for i := 1; i < n; i++ {
			s.AddEdge(hub, cfg.idFn(i))
		}

		return nil
	}
}
