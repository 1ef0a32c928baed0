// Command ropeviz builds a rope from a file (or stdin) and prints its
// shape: either a human-readable stats summary or a Graphviz DOT
// description for piping into `dot -Tpng`.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cordage/rope/pkg/rope"
)

func main() {
	dot := flag.Bool("dot", false, "emit Graphviz DOT instead of stats")
	path := flag.String("file", "", "input file (default: stdin)")
	flag.Parse()

	var src io.Reader = os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			log.Fatalf("ropeviz: %v", err)
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		log.Fatalf("ropeviz: reading input: %v", err)
	}

	r := rope.FromString(string(data))
	log.Printf("ropeviz: built rope with %d graphemes, %d lines", r.GraphemeCount(), r.LineCount())

	if *dot {
		fmt.Print(r.ToGraphviz())
		return
	}

	st := r.Stats()
	fmt.Printf("nodes=%d leaves=%d height=%d graphemes=%d avg-leaf=%.1f min-leaf=%d max-leaf=%d balanced=%t\n",
		st.NodeCount, st.LeafCount, st.Height, st.GraphemeCount, st.AvgLeafSize, st.MinLeafSize, st.MaxLeafSize, r.IsBalanced())
}
