// Command hopreach measures how reachability in an undirected social graph
// grows with hop distance.
//
//	hopreach profile edges.txt          most-reaching vertex per depth 1..6
//	hopreach overlap edges.txt          neighbor / 2-hop overlap ratio
//	hopreach batches edges.txt          extended degree and components per batch
//	hopreach generate random --n 1000   synthetic edge list on stdout
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
