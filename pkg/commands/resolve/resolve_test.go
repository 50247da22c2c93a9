package resolve

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var elixirFiles = []string{
	"lib/example.ex",
	"lib/example/content.ex",
	"lib/example/account.ex",
	"test/example/account/account_test.exs",
	"test/example/content/content_test.exs",
}

func setup(t *testing.T) (*testutil.TestEnvironment, string, string) {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	fzf := testutil.WriteFakeFzf(t)
	list := env.WriteFileList("files.txt", elixirFiles...)
	return env, fzf, list
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "implementation to test", filename: "lib/example/content.ex", want: "test/example/content/content_test.exs"},
		{name: "test to implementation", filename: "test/example/content/content_test.exs", want: "lib/example/content.ex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fzf, list := setup(t)

			result, err := Resolve(context.Background(), Options{
				Filename:      tt.filename,
				Filetype:      "elixir",
				RankerCommand: fzf,
				FilesFrom:     list,
			})
			require.NoError(t, err)
			assert.True(t, result.Found)
			assert.Equal(t, tt.want, result.Path)
		})
	}
}

func TestResolveNoAlternate(t *testing.T) {
	env, fzf, _ := setup(t)
	list := env.WriteFileList("impl-only.txt", "lib/example/content.ex", "lib/example.ex")

	result, err := Resolve(context.Background(), Options{
		Filename:      "lib/example/content.ex",
		Filetype:      "elixir",
		RankerCommand: fzf,
		FilesFrom:     list,
	})
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestResolveUsesConfiguredRankerAndListCommand(t *testing.T) {
	env, fzf, list := setup(t)
	env.WriteProjectConfig(`
[ranker]
command = "` + fzf + `"

[corpus]
command = "cat ` + list + `"
`)

	result, err := Resolve(context.Background(), Options{
		Filename: "lib/example/account.ex",
		Filetype: "elixir",
	})
	require.NoError(t, err)
	assert.Equal(t, "test/example/account/account_test.exs", result.Path)
}

func TestResolveListCommandFlag(t *testing.T) {
	_, fzf, list := setup(t)

	result, err := Resolve(context.Background(), Options{
		Filename:      "lib/example/account.ex",
		Filetype:      "elixir",
		RankerCommand: fzf,
		ListCommand:   "cat " + list,
	})
	require.NoError(t, err)
	assert.Equal(t, "test/example/account/account_test.exs", result.Path)
}

func TestResolveUnknownFiletypeRunsNoListCommand(t *testing.T) {
	env, fzf, _ := setup(t)
	marker := filepath.Join(env.ProjectRoot, "listed")

	_, err := Resolve(context.Background(), Options{
		Filename:      "src/Main.hs",
		Filetype:      "haskell",
		RankerCommand: fzf,
		ListCommand:   "touch " + marker,
	})
	assert.Equal(t, errors.ErrUnknownFiletype, errors.GetErrorCode(err))
	assert.NoFileExists(t, marker)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     func(fzf, list string) Options
		setup    func(env *testutil.TestEnvironment)
		wantCode errors.ErrorCode
	}{
		{
			name: "missing filetype",
			opts: func(fzf, list string) Options {
				return Options{Filename: "lib/a.ex"}
			},
			wantCode: errors.ErrInvalidInput,
		},
		{
			name: "negative timeout",
			opts: func(fzf, list string) Options {
				return Options{Filename: "lib/a.ex", Filetype: "elixir", Timeout: -time.Second}
			},
			wantCode: errors.ErrInvalidInput,
		},
		{
			name: "unknown filetype",
			opts: func(fzf, list string) Options {
				return Options{Filename: "src/Main.hs", Filetype: "haskell", RankerCommand: fzf, FilesFrom: list}
			},
			wantCode: errors.ErrUnknownFiletype,
		},
		{
			name: "bad pattern",
			opts: func(fzf, list string) Options {
				return Options{Filename: "lib/a.ex", Filetype: "elixir", RankerCommand: fzf, FilesFrom: list}
			},
			setup: func(env *testutil.TestEnvironment) {
				env.WriteUserConfig("[filetypes.elixir]\nis_test = '('\nstrip = 'x'\n")
			},
			wantCode: errors.ErrPatternCompile,
		},
		{
			name: "missing config file",
			opts: func(fzf, list string) Options {
				return Options{Filename: "lib/a.ex", Filetype: "elixir", ConfigFile: "nope.toml"}
			},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "missing file list",
			opts: func(fzf, list string) Options {
				return Options{Filename: "lib/a.ex", Filetype: "elixir", RankerCommand: fzf, FilesFrom: filepath.Join(filepath.Dir(list), "none.txt")}
			},
			wantCode: errors.ErrFileAccess,
		},
		{
			name: "ranker failure",
			opts: func(fzf, list string) Options {
				return Options{Filename: "lib/a.ex", Filetype: "elixir", RankerCommand: "fzf-alt-no-such-ranker", FilesFrom: list}
			},
			wantCode: errors.ErrProcess,
		},
		{
			name: "explicit alternate",
			opts: func(fzf, list string) Options {
				return Options{Filename: "lib/a.ex", Filetype: "elixir", Alternate: "test/a_test.exs", RankerCommand: fzf}
			},
			wantCode: errors.ErrNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, fzf, list := setup(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			_, err := Resolve(context.Background(), tt.opts(fzf, list))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err), err.Error())
		})
	}
}

func TestResolveTimeoutOverride(t *testing.T) {
	_, fzf, list := setup(t)
	t.Setenv(testutil.FakeFzfMode, "hang")

	_, err := Resolve(context.Background(), Options{
		Filename:      "lib/example/content.ex",
		Filetype:      "elixir",
		RankerCommand: fzf,
		FilesFrom:     list,
		Timeout:       100 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrProcessTimeout, errors.GetErrorCode(err))
}
