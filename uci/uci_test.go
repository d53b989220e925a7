package uci

import (
	"strings"
	"testing"

	"github.com/go-logr/stdr"
)

func TestUCIHandshake(t *testing.T) {
	in := strings.NewReader("uci\nisready\nquit\n")
	var out strings.Builder
	Run(in, &out, stdr.New(nil))

	got := out.String()
	if !strings.Contains(got, "uciok") {
		t.Fatalf("expected uciok in output, got %q", got)
	}
	if !strings.Contains(got, "readyok") {
		t.Fatalf("expected readyok in output, got %q", got)
	}
}

func TestUCIPositionAndGo(t *testing.T) {
	in := strings.NewReader("position startpos moves e2e4 e7e5\ngo depth 2\nquit\n")
	var out strings.Builder
	Run(in, &out, stdr.New(nil))

	got := out.String()
	if !strings.Contains(got, "bestmove") {
		t.Fatalf("expected a bestmove line, got %q", got)
	}
}

func TestUCIPerftCommand(t *testing.T) {
	in := strings.NewReader("position startpos\nperft 2\nquit\n")
	var out strings.Builder
	Run(in, &out, stdr.New(nil))

	got := out.String()
	if !strings.Contains(got, "nodes 400") {
		t.Fatalf("expected perft 2 from startpos to report 400 nodes, got %q", got)
	}
}

func TestUCIDCommand(t *testing.T) {
	in := strings.NewReader("d\nquit\n")
	var out strings.Builder
	Run(in, &out, stdr.New(nil))

	if !strings.Contains(out.String(), "White to move") {
		t.Fatalf("expected board dump to mention side to move, got %q", out.String())
	}
}
