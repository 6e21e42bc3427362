// Command mazegen generates perfect mazes and measures their quality.
//
//	mazegen generate -w 20 -g 10 -a prim --seed 7 --mark-path
//	mazegen compare -w 30 -g 30 --runs 10
//	mazegen algorithms
//
// Settings come from --config (YAML), .env, MAZEGEN_* variables and flags,
// in increasing precedence.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
