package gameconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
game "peru-1990" {
  quota = 91

  player "FREDEMO"  { weight = 62 }
  player "APRA"     { weight = 53 }
  player "Cambio90" { weight = 32 }
  player "IU"       { weight = 16 }
}

game "simple-majority" {
  majority = true

  player "A" { weight = 2 }
  player "B" { weight = 2 }
  player "C" { weight = 1 }
}
`)

	defs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	peru := defs[0]
	assert.Equal(t, "peru-1990", peru.Name)
	assert.Equal(t, []string{"FREDEMO", "APRA", "Cambio90", "IU"}, peru.Players)
	assert.Equal(t, 91, peru.Game.Quota())
	assert.Equal(t, []int{62, 53, 32, 16}, peru.Game.Weights())

	maj := defs[1]
	assert.Equal(t, 3, maj.Game.Quota(), "majority of 5 total weight")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "no games",
			contents: ``,
		},
		{
			name: "no players",
			contents: `
game "empty" {
  quota = 5
}
`,
		},
		{
			name: "missing quota and majority",
			contents: `
game "no-rule" {
  player "A" { weight = 1 }
}
`,
		},
		{
			name: "quota and majority together",
			contents: `
game "ambiguous" {
  quota    = 5
  majority = true

  player "A" { weight = 1 }
}
`,
		},
		{
			name: "negative weight rejected by validation",
			contents: `
game "bad-weight" {
  quota = 3

  player "A" { weight = -2 }
  player "B" { weight = 4 }
}
`,
		},
		{
			name: "not hcl",
			contents: `{"quota": 5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestFind(t *testing.T) {
	path := writeConfig(t, `
game "only" {
  quota = 2
  player "A" { weight = 1 }
  player "B" { weight = 1 }
}
`)
	defs, err := Load(path)
	require.NoError(t, err)

	def, err := Find(defs, "")
	require.NoError(t, err)
	assert.Equal(t, "only", def.Name)

	def, err = Find(defs, "only")
	require.NoError(t, err)
	assert.Equal(t, "only", def.Name)

	_, err = Find(defs, "missing")
	assert.Error(t, err)
}

func TestFindAmbiguousWithoutName(t *testing.T) {
	path := writeConfig(t, `
game "a" {
  quota = 1
  player "A" { weight = 1 }
}

game "b" {
  quota = 1
  player "B" { weight = 1 }
}
`)
	defs, err := Load(path)
	require.NoError(t, err)

	_, err = Find(defs, "")
	assert.Error(t, err)
}
