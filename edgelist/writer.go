package edgelist

import (
	"bufio"
	"io"
)

// Write emits one "U V" line per record, separated by delim (0 writes a
// single space). Output read back with the same delimiter yields recs.
func Write(w io.Writer, recs []Record, delim rune) error {
	sep := " "
	if delim != 0 {
		sep = string(delim)
	}
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		bw.WriteString(r.U)
		bw.WriteString(sep)
		bw.WriteString(r.V)
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
