// Command ffp is the CLI adapter named in spec.md §6: --help, --fen,
// --perft, --search, --search-time, and --uci, all over one binary.
// It is a thin adapter over chess/search/uci, grounded on the reference
// engine's cmd/perft flag layout and timing report.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/stdr"

	"github.com/dogw4t3r/ffp/chess"
	"github.com/dogw4t3r/ffp/search"
	"github.com/dogw4t3r/ffp/uci"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ffp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fen := fs.String("fen", chess.StartFEN, "FEN string for the starting position")
	perftDepth := fs.Int("perft", 0, "run perft to the given depth and print the leaf count")
	divide := fs.Bool("divide", false, "with -perft, print per-root-move leaf counts")
	searchDepth := fs.Int("search", 0, "run a search to the given depth and print the best move")
	searchTimeMS := fs.Int("search-time", 0, "cap search time in milliseconds; on its own, searches to the default depth")
	runUCI := fs.Bool("uci", false, "run the UCI command loop over stdin/stdout")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	log := stdr.New(nil)

	if *runUCI {
		uci.Run(stdin, stdout, log)
		return 0
	}

	pos, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(stderr, "ffp: invalid FEN: %v\n", err)
		return 1
	}

	ranSomething := false

	if *perftDepth > 0 {
		ranSomething = true
		if *divide {
			entries := chess.PerftDivide(pos, *perftDepth)
			var sum uint64
			for _, e := range entries {
				fmt.Fprintf(stdout, "%s: %d\n", e.Move.String(), e.Nodes)
				sum += e.Nodes
			}
			fmt.Fprintf(stdout, "total: %d\n", sum)
		} else {
			start := time.Now()
			nodes := chess.Perft(pos, *perftDepth)
			elapsed := time.Since(start)
			var nps float64
			if secs := elapsed.Seconds(); secs > 0 {
				nps = float64(nodes) / secs
			}
			fmt.Fprintf(stdout, "depth %d nodes %d time %s nps %.0f\n", *perftDepth, nodes, elapsed, nps)
		}
	}

	if *searchDepth > 0 || *searchTimeMS > 0 {
		ranSomething = true
		limits := search.SearchLimits{MaxDepth: *searchDepth, TimeMS: *searchTimeMS}
		result := search.Search(pos, limits)
		if !result.HasBestMove {
			fmt.Fprintln(stdout, "bestmove none")
		} else {
			fmt.Fprintf(stdout, "bestmove %s depth %d score %d nodes %d\n",
				result.BestMove.String(), result.DepthReached, result.Score, result.Nodes)
		}
	}

	if !ranSomething {
		fs.Usage()
		return 1
	}
	return 0
}
