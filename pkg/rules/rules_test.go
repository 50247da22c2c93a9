package rules

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/fzf-alt/pkg/config"
	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFiletypes = map[string]config.FiletypeConfig{
	"elixir": {
		IsTest: `_test.exs$`,
		Strip:  `(?P<p>[^_\\/]+)_?(\w+)?.exs?$`,
	},
	"python": {
		IsTest: `(tests|test)_(\w+).py`,
		Strip:  `src/(?P<p>\w+).py$`,
	},
	"nogroup": {
		IsTest: `Spec\.hs$`,
		Strip:  `(\w+)\.hs$`,
	},
}

func compileTestTable(t *testing.T) Table {
	t.Helper()
	table, err := Compile(testFiletypes)
	require.NoError(t, err)
	return table
}

func TestCompile(t *testing.T) {
	table := compileTestTable(t)

	assert.Equal(t, []string{"elixir", "nogroup", "python"}, table.Names())
	rule := table["elixir"]
	require.NotNil(t, rule)
	assert.Equal(t, "elixir", rule.Filetype)
	assert.Equal(t, `_test.exs$`, rule.TestPattern.String())
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name      string
		filetypes map[string]config.FiletypeConfig
		wantField string
		wantType  string
	}{
		{
			name: "bad test pattern",
			filetypes: map[string]config.FiletypeConfig{
				"elixir": {IsTest: `_test(.exs$`, Strip: `(?P<p>\w+)`},
			},
			wantField: "is_test",
			wantType:  "elixir",
		},
		{
			name: "bad strip pattern",
			filetypes: map[string]config.FiletypeConfig{
				"python": {IsTest: `test_`, Strip: `src/(?P<p>\w+.py$`},
			},
			wantField: "strip",
			wantType:  "python",
		},
		{
			name: "perl lookahead is rejected",
			filetypes: map[string]config.FiletypeConfig{
				"go": {IsTest: `_test\.go$`, Strip: `(?P<p>\w+)(?=_test)`},
			},
			wantField: "strip",
			wantType:  "go",
		},
		{
			name: "first failing filetype in name order is reported",
			filetypes: map[string]config.FiletypeConfig{
				"zig":  {IsTest: `(`, Strip: `x`},
				"bash": {IsTest: `x`, Strip: `)`},
			},
			wantField: "strip",
			wantType:  "bash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Compile(tt.filetypes)
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPatternCompile))
			assert.True(t, errors.IsConfigError(err))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.wantType, details["filetype"])
			assert.Equal(t, tt.wantField, details["field"])
		})
	}
}

func TestLookup(t *testing.T) {
	table := compileTestTable(t)

	rule, err := table.Lookup("elixir")
	require.NoError(t, err)
	assert.Equal(t, "elixir", rule.Filetype)

	_, err = table.Lookup("haskell")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFiletype))
	assert.Equal(t, "haskell", errors.GetErrorDetails(err)["filetype"])

	// Filetypes are case-sensitive
	_, err = table.Lookup("Elixir")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFiletype))
}

func TestExtractKey(t *testing.T) {
	table := compileTestTable(t)

	tests := []struct {
		filetype string
		filename string
		want     string
	}{
		{"elixir", "lib/example/content.ex", "content"},
		{"elixir", "test/example/content/content_test.exs", "content"},
		{"elixir", "lib/example_web/controllers/user_controller.ex", "user"},
		{"elixir", `lib\example\content.ex`, "content"},
		{"elixir", "README.md", "README.md"},
		{"python", "src/parser.py", "parser"},
		{"python", "tests/test_parser.py", "tests/test_parser.py"},
		// pattern without the key group falls back to the filename
		{"nogroup", "src/Parser.hs", "src/Parser.hs"},
	}

	for _, tt := range tests {
		t.Run(tt.filetype+"/"+tt.filename, func(t *testing.T) {
			rule, err := table.Lookup(tt.filetype)
			require.NoError(t, err)

			got := rule.ExtractKey(tt.filename)
			assert.Equal(t, tt.want, got)
			// Pure: a second call gives the same key
			assert.Equal(t, got, rule.ExtractKey(tt.filename))
		})
	}
}

func TestExtractKeyEmptyGroupFallsBack(t *testing.T) {
	table, err := Compile(map[string]config.FiletypeConfig{
		"optional": {IsTest: `_test`, Strip: `(?P<p>[a-z]*)\.txt$`},
		"unused":   {IsTest: `_test`, Strip: `^(?:(?P<p>lib)/|src/)\w+`},
	})
	require.NoError(t, err)

	// group matches the empty string
	assert.Equal(t, "NOTES.txt", table["optional"].ExtractKey("NOTES.txt"))
	// group does not participate in the match
	assert.Equal(t, "src/main", table["unused"].ExtractKey("src/main"))
	assert.Equal(t, "lib", table["unused"].ExtractKey("lib/main"))
}

func TestIsTest(t *testing.T) {
	table := compileTestTable(t)
	elixir := table["elixir"]
	python := table["python"]

	assert.True(t, elixir.IsTest("test/example/content/content_test.exs"))
	assert.False(t, elixir.IsTest("lib/example/content.ex"))
	assert.False(t, elixir.IsTest("test/test_helper.exs"))
	assert.False(t, elixir.IsTest(""))

	// unanchored search
	assert.True(t, python.IsTest("project/tests/test_parser.py"))
	assert.True(t, python.IsTest("test_parser.pyc"))
	assert.False(t, python.IsTest("src/parser.py"))
}

func TestIsAlternate(t *testing.T) {
	elixir := compileTestTable(t)["elixir"]

	assert.True(t, elixir.IsAlternate("lib/example/content.ex", "test/example/content/content_test.exs"))
	assert.True(t, elixir.IsAlternate("test/example/content/content_test.exs", "lib/example/content.ex"))
	assert.False(t, elixir.IsAlternate("lib/example/content.ex", "lib/example/content.ex"))
	assert.False(t, elixir.IsAlternate("test/a_test.exs", "test/b_test.exs"))
}

func TestHasKeyGroup(t *testing.T) {
	table := compileTestTable(t)
	assert.True(t, table["elixir"].HasKeyGroup())
	assert.False(t, table["nogroup"].HasKeyGroup())
}

func TestCompileMissingKeyGroupIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })
	log.Logger = zerolog.New(&buf).Level(zerolog.WarnLevel)

	_, err := Compile(testFiletypes)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
