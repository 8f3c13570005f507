package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the path P_n: edges (i-1)–i for i = 1..n-1.
func Path(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(s, n, cfg.idFn)
		for i := 1; i < n; i++ {
			s.AddEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
