// Package uci implements the Universal Chess Interface command subset
// named in spec.md §6: uci, isready, ucinewgame, position, go, perft, d,
// quit. It is a thin adapter over chess and search, kept out of the
// core's tested contract (the teacher's own root uci.go plays the same
// role over goosemg/engine).
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/dogw4t3r/ffp/chess"
	"github.com/dogw4t3r/ffp/search"
)

// Run drives the UCI command loop, reading commands from in and writing
// protocol responses to out. Operator diagnostics go to log, never to
// out, so they never corrupt the protocol stream.
func Run(in io.Reader, out io.Writer, log logr.Logger) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	pos := chess.NewStartPos()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name ffp")
			fmt.Fprintln(out, "id author ffp")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			pos = chess.NewStartPos()
		case "position":
			p, err := parsePosition(tokens[1:])
			if err != nil {
				log.Error(err, "position command failed", "line", line)
				continue
			}
			pos = p
		case "go":
			handleGo(pos, tokens[1:], out, log)
		case "perft":
			handlePerft(pos, tokens[1:], out, log)
		case "d":
			fmt.Fprint(out, pos.String())
		case "quit":
			return
		default:
			log.V(1).Info("unrecognized command", "line", line)
		}
	}
}

// parsePosition handles "position startpos [moves ...]" and
// "position fen <fen> [moves ...]".
func parsePosition(tokens []string) (*chess.Position, error) {
	if len(tokens) == 0 {
		return nil, errMissingPositionArgs
	}

	var pos *chess.Position
	var rest []string
	switch tokens[0] {
	case "startpos":
		pos = chess.NewStartPos()
		rest = tokens[1:]
	case "fen":
		end := 1
		for end < len(tokens) && tokens[end] != "moves" {
			end++
		}
		fen := strings.Join(tokens[1:end], " ")
		p, err := chess.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
		pos = p
		rest = tokens[end:]
	default:
		return nil, errMissingPositionArgs
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, ms := range rest[1:] {
			m, err := chess.ParseUCIMove(pos, ms)
			if err != nil {
				return nil, err
			}
			chess.MakeMove(pos, m)
		}
	}
	return pos, nil
}

var errMissingPositionArgs = fmt.Errorf("uci: position command requires 'startpos' or 'fen <fen>'")

// handleGo parses a subset of "go" arguments (depth, movetime, nodes)
// into SearchLimits and prints the resulting bestmove line.
func handleGo(pos *chess.Position, args []string, out io.Writer, log logr.Logger) {
	limits := search.SearchLimits{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					limits.MaxDepth = n
				}
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					limits.TimeMS = n
				}
				i++
			}
		case "nodes":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					limits.NodeLimit = uint64(n)
				}
				i++
			}
		}
	}

	result := search.Search(pos, limits)
	log.V(1).Info("search finished", "depth", result.DepthReached, "nodes", result.Nodes, "score", result.Score)
	if result.HasBestMove {
		fmt.Fprintf(out, "info depth %d nodes %d score cp %d\n", result.DepthReached, result.Nodes, result.Score)
		fmt.Fprintf(out, "bestmove %s\n", result.BestMove.String())
	} else {
		fmt.Fprintln(out, "bestmove 0000")
	}
}

// handlePerft implements the non-standard "perft <depth>" command the
// teacher's adapter also exposes, printing the leaf count at depth.
func handlePerft(pos *chess.Position, args []string, out io.Writer, log logr.Logger) {
	if len(args) == 0 {
		log.Error(fmt.Errorf("uci: perft requires a depth argument"), "perft command failed")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		log.Error(err, "perft command failed", "arg", args[0])
		return
	}
	nodes := chess.Perft(pos, depth)
	fmt.Fprintf(out, "nodes %d\n", nodes)
}
