package builder

// addVertices registers idFn(0..n-1) with s and returns the IDs.
func addVertices(s sink, n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
		s.AddVertex(ids[i])
	}

	return ids
}
