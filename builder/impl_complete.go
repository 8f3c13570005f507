package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n: every unordered pair {i, j}, i < j,
// emitted with i ascending, then j ascending.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(s, n, cfg.idFn)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.AddEdge(ids[i], ids[j])
			}
		}

		return nil
	}
}
