package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n: edges i–(i+1) mod n.
func Cycle(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(s, n, cfg.idFn)
		for i := 0; i < n; i++ {
			s.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
