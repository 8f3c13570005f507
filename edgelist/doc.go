// Package edgelist reads undirected edge lists: one edge per line, two vertex
// identifiers separated by whitespace or a single delimiter rune.
//
// Lines whose token count is not exactly two are skipped and counted in
// Stats.Skipped; they are never an error. Only I/O failures (missing file,
// unreadable stream, a line longer than MaxLineBytes) stop a load, and those
// errors wrap ErrLoad.
//
// Three entry points share one parser:
//
//	Read     collects Records (the batch pipeline needs them in input order)
//	ReadFile is Read on a path
//	Load     streams edges straight into a core.Builder
//	LoadFile opens a path, loads it and freezes the graph
package edgelist
