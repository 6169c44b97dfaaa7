// Command xqaoa evaluates and optimises closed-form XQAOA expected cuts.
//
//	xqaoa info graph.txt
//	xqaoa eval graph.txt --angles angles.txt --edges
//	xqaoa optimize graph.yaml --method bfgs --restarts 16 --out best.txt
//	xqaoa generate wheel --n 8 > wheel8.txt
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
