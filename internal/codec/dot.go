package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/dtroode/friendgraph/internal/model"
)

// EncodeDOT writes s as an undirected Graphviz graph labelled with user names.
func EncodeDOT(w io.Writer, s model.Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph SocialNetwork {")
	for _, u := range s.Users {
		fmt.Fprintf(bw, "  %d [label=%s];\n", u.ID, strconv.Quote(u.Name))
	}
	for _, e := range s.Edges {
		fmt.Fprintf(bw, "  %d -- %d;\n", e.A, e.B)
	}
	fmt.Fprintln(bw, "}")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write dot: %w: %w", model.ErrIO, err)
	}
	return nil
}
