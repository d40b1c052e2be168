// Command solvemcf solves a DIMACS min-cost-flow instance.
//
// Usage:
//
//	solvemcf INPUT OUTPUT
//
// INPUT is a DIMACS document ("p min" header, "n" supply lines, "a" arc
// lines with lower bound, capacity and cost). The non-zero arc flows are
// written to OUTPUT, one "src dst flow" line per arc; node/arc counts
// and the total cost go to stderr.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/avoskre/monarchs/mincost"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelInfo,
		}),
	))

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Correct arguments: input_filename output_filename")
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		slog.Error("solvemcf failed", "err", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	net, err := mincost.ReadDIMACS(in)
	if err != nil {
		return err
	}
	slog.Info("instance loaded", "nodes", net.NumNodes(), "arcs", net.NumArcs())

	res, err := mincost.Solve(net, mincost.DefaultOptions())
	if err != nil {
		return err
	}
	slog.Info("solved", "cost", res.Cost)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return mincost.WriteFlows(out, net, res)
}
