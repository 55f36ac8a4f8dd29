package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lox/powerindex/voting"
)

func TestResolveGameFromWeights(t *testing.T) {
	tests := []struct {
		name      string
		args      gameArgs
		wantQuota int
		wantErr   bool
	}{
		{
			name:      "explicit quota",
			args:      gameArgs{Weights: []int{4, 3, 2}, Quota: 6},
			wantQuota: 6,
		},
		{
			name:      "majority default",
			args:      gameArgs{Weights: []int{62, 53, 32, 16, 4, 7, 3, 3}},
			wantQuota: 91,
		},
		{
			name:    "no weights no config",
			args:    gameArgs{},
			wantErr: true,
		},
		{
			name:    "invalid weights",
			args:    gameArgs{Weights: []int{3, -1}, Quota: 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players, game, err := tt.args.resolveGame()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if game.Quota() != tt.wantQuota {
				t.Errorf("quota = %d, want %d", game.Quota(), tt.wantQuota)
			}
			if len(players) != game.Players() {
				t.Errorf("%d player names for %d players", len(players), game.Players())
			}
			if players[0] != "P1" {
				t.Errorf("players[0] = %q, want P1", players[0])
			}
		})
	}
}

func TestResolveGameFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.hcl")
	contents := `
game "test" {
  quota = 3

  player "Alice" { weight = 2 }
  player "Bob"   { weight = 2 }
  player "Carol" { weight = 1 }
}
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	args := gameArgs{Config: path}
	players, game, err := args.resolveGame()
	if err != nil {
		t.Fatal(err)
	}
	if players[0] != "Alice" || players[2] != "Carol" {
		t.Errorf("unexpected player names: %v", players)
	}
	if game.Quota() != 3 {
		t.Errorf("quota = %d, want 3", game.Quota())
	}

	// Weights and config together are ambiguous.
	args = gameArgs{Config: path, Weights: []int{1, 2}}
	if _, _, err := args.resolveGame(); err == nil {
		t.Error("expected error for config plus weights")
	}

	// Quota flag conflicts with the file's own rule.
	args = gameArgs{Config: path, Quota: 5}
	if _, _, err := args.resolveGame(); err == nil {
		t.Error("expected error for config plus quota flag")
	}
}

func TestFormatShare(t *testing.T) {
	tests := []struct {
		share float64
		want  string
	}{
		{0, "0.00%"},
		{0.5, "50.00%"},
		{1, "100.00%"},
		{1.0 / 3, "33.33%"},
	}
	for _, tt := range tests {
		if got := formatShare(tt.share); got != tt.want {
			t.Errorf("formatShare(%v) = %q, want %q", tt.share, got, tt.want)
		}
	}
}

func TestRenderResult(t *testing.T) {
	g, err := voting.NewGame([]int{5, 1, 1}, 5)
	if err != nil {
		t.Fatal(err)
	}
	res, err := voting.Banzhaf(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderResult(&buf, "banzhaf", []string{"Big", "Small1", "Small2"}, g, res)
	out := buf.String()

	for _, want := range []string{"banzhaf", "Big", "Small1", "100.00%", "0.00%", "quota 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderComparisonDegenerate(t *testing.T) {
	g, err := voting.NewGame([]int{1, 2}, 10)
	if err != nil {
		t.Fatal(err)
	}
	banzhaf, err := voting.Banzhaf(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	shapley, err := voting.ShapleyDP(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderComparison(&buf, []string{"P1", "P2"}, g, banzhaf, shapley)
	if !strings.Contains(buf.String(), "quota unreachable") {
		t.Errorf("degenerate game not flagged:\n%s", buf.String())
	}
}
