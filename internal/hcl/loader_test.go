package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSweepFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullSweepBlock(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
		sweep "polynomial" "quadratic_scan" {
			repetitions = 5

			parameter "x" {
				from  = 0
				to    = 5
				count = 11
			}
			parameter "b" {
				values = [1, 10, 20]
			}

			fixed {
				a = 2
				c = -1
			}

			output {
				directory = "results/quadratic_scan"
				overwrite = true
				format    = "svg"
			}
		}
	`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Sweeps, 1)

	sw := model.Sweeps[0]
	require.Equal(t, "polynomial", sw.ModelType)
	require.Equal(t, "quadratic_scan", sw.Name)
	require.Equal(t, 5, sw.Repetitions)

	require.Len(t, sw.Parameters, 2)
	require.Equal(t, "x", sw.Parameters[0].Name)
	require.Len(t, sw.Parameters[0].Values, 11)
	require.Equal(t, 0.0, sw.Parameters[0].Values[0])
	require.Equal(t, 5.0, sw.Parameters[0].Values[10])
	require.Equal(t, []float64{1, 10, 20}, sw.Parameters[1].Values)

	require.Equal(t, map[string]float64{"a": 2, "c": -1}, sw.Fixed)

	require.Equal(t, "results/quadratic_scan", sw.Output.Directory)
	require.True(t, sw.Output.Overwrite)
	require.Equal(t, "svg", sw.Output.Format)
	require.True(t, sw.Output.Plots)
}

func TestLoad_RepetitionsDefaultToOne(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
		sweep "m" "s" {
			parameter "x" { values = [1] }
		}
	`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, model.Sweeps[0].Repetitions)
	require.Nil(t, model.Sweeps[0].Output)
}

func TestLoad_ParameterNeedsExactlyOneForm(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"both forms": `
			sweep "m" "s" {
				parameter "x" {
					values = [1, 2]
					from   = 0
					to     = 1
					count  = 5
				}
			}`,
		"partial range": `
			sweep "m" "s" {
				parameter "x" {
					from = 0
					to   = 1
				}
			}`,
		"no values": `
			sweep "m" "s" {
				parameter "x" {}
			}`,
		"bad count": `
			sweep "m" "s" {
				parameter "x" {
					from  = 0
					to    = 1
					count = 0
				}
			}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := writeSweepFile(t, content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
		})
	}
}

func TestLoad_FixedMustBeNumeric(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
		sweep "m" "s" {
			parameter "x" { values = [1] }
			fixed {
				label = "not a number"
			}
		}
	`)

	_, err := NewLoader().Load(context.Background(), path)
	require.ErrorContains(t, err, "must be a number")
}

func TestLoad_MergesSweepsAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`
		sweep "m" "first" {
			parameter "x" { values = [1] }
		}
	`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`
		sweep "m" "second" {
			parameter "x" { values = [2] }
		}
	`), 0o644))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Sweeps, 2)
}

func TestLoad_MissingPathIsError(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
