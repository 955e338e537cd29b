package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("NoLines", func(t *testing.T) {
		t.Parallel()
		_, ok := Extract(nil)
		assert.False(t, ok)
	})

	t.Run("NoHeader", func(t *testing.T) {
		t.Parallel()
		_, ok := Extract([]string{"# Title", "---", "body"})
		assert.False(t, ok)
	})

	t.Run("YAMLHeader", func(t *testing.T) {
		t.Parallel()
		block, ok := Extract([]string{"---", "title: Foo", "source: TOI", "---", "# Body"})
		require.True(t, ok)
		assert.Equal(t, FormatYAML, block.Format)
		assert.Equal(t, "title: Foo\nsource: TOI", block.Content)
	})

	t.Run("DelimiterWithWhitespace", func(t *testing.T) {
		t.Parallel()
		block, ok := Extract([]string{"  ---  \r", "title: Foo\r", " --- ", "body"})
		require.True(t, ok)
		assert.Equal(t, "title: Foo", block.Content)
	})

	t.Run("UnterminatedRunsToEnd", func(t *testing.T) {
		t.Parallel()
		block, ok := Extract([]string{"---", "title: Foo", "source: Bar"})
		require.True(t, ok)
		assert.Equal(t, "title: Foo\nsource: Bar", block.Content)
	})

	t.Run("TOMLHeader", func(t *testing.T) {
		t.Parallel()
		block, ok := Extract([]string{"+++", `title = "Foo"`, "+++"})
		require.True(t, ok)
		assert.Equal(t, FormatTOML, block.Format)
		assert.Equal(t, `title = "Foo"`, block.Content)
	})

	t.Run("TOMLBlockIgnoresYAMLDelimiter", func(t *testing.T) {
		t.Parallel()
		block, ok := Extract([]string{"+++", "---", `title = "Foo"`, "+++"})
		require.True(t, ok)
		assert.Equal(t, "---\ntitle = \"Foo\"", block.Content)
	})

	t.Run("EmptyBlock", func(t *testing.T) {
		t.Parallel()
		block, ok := Extract([]string{"---", "---"})
		require.True(t, ok)
		assert.Empty(t, block.Content)
	})
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("NoHeader", func(t *testing.T) {
		t.Parallel()
		meta, err := Read([]byte("# Just a body\n"))
		require.NoError(t, err)
		assert.Empty(t, meta)
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		t.Parallel()
		meta, err := Read(nil)
		require.NoError(t, err)
		assert.Empty(t, meta)
	})

	t.Run("YAML", func(t *testing.T) {
		t.Parallel()
		meta, err := Read([]byte("---\ntitle: Foo\ndifficulty: 3\ntags: [dp, greedy]\n---\nbody\n"))
		require.NoError(t, err)

		title, ok := meta.String("title")
		assert.True(t, ok)
		assert.Equal(t, "Foo", title)

		difficulty, ok := meta.String("difficulty")
		assert.True(t, ok)
		assert.Equal(t, "3", difficulty)

		tags, ok := meta.String("tags")
		assert.True(t, ok)
		assert.Equal(t, "dp, greedy", tags)
	})

	t.Run("TOML", func(t *testing.T) {
		t.Parallel()
		meta, err := Read([]byte("+++\ntitle = \"Foo\"\ntags = [\"dp\", \"math\"]\n+++\n"))
		require.NoError(t, err)

		title, _ := meta.String("title")
		assert.Equal(t, "Foo", title)
		tags, _ := meta.String("tags")
		assert.Equal(t, "dp, math", tags)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		t.Parallel()
		_, err := Read([]byte("---\ntitle: [unclosed\n---\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("MalformedTOML", func(t *testing.T) {
		t.Parallel()
		_, err := Read([]byte("+++\ntitle = \n+++\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("ScalarYAMLIsMalformed", func(t *testing.T) {
		t.Parallel()
		_, err := Read([]byte("---\njust a string\n---\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("NullYAMLIsEmpty", func(t *testing.T) {
		t.Parallel()
		meta, err := Read([]byte("---\n# only a comment\n---\n"))
		require.NoError(t, err)
		assert.Empty(t, meta)
	})

	t.Run("NonStringKeys", func(t *testing.T) {
		t.Parallel()
		meta, err := Read([]byte("---\n1: one\ntitle: Foo\n---\n"))
		require.NoError(t, err)
		one, ok := meta.String("1")
		assert.True(t, ok)
		assert.Equal(t, "one", one)
	})
}

func TestMetaString(t *testing.T) {
	t.Parallel()

	meta := Meta{
		"title":  "Foo",
		"null":   nil,
		"bool":   true,
		"float":  1.5,
		"list":   []any{"a", nil, 2},
		"empty":  "",
		"nested": []any{[]any{"x", "y"}, "z"},
		"whole":  3.0,
		"zero":   0,
		"off":    false,
		"tiny":   0.00001,
		"huge":   1e20,
		"int64":  int64(42),
	}

	tests := []struct {
		key      string
		expected string
		ok       bool
	}{
		{key: "title", expected: "Foo", ok: true},
		{key: "missing", expected: "", ok: false},
		{key: "null", expected: "", ok: false},
		{key: "bool", expected: "true", ok: true},
		{key: "float", expected: "1.5", ok: true},
		{key: "list", expected: "a, 2", ok: true},
		{key: "empty", expected: "", ok: true},
		{key: "nested", expected: "x, y, z", ok: true},
		{key: "whole", expected: "3.0", ok: true},
		{key: "zero", expected: "0", ok: true},
		{key: "off", expected: "false", ok: true},
		{key: "tiny", expected: "1e-05", ok: true},
		{key: "huge", expected: "1e+20", ok: true},
		{key: "int64", expected: "42", ok: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			got, ok := meta.String(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMetaTruthy(t *testing.T) {
	t.Parallel()

	meta := Meta{
		"title":  "Foo",
		"null":   nil,
		"true":   true,
		"false":  false,
		"zero":   0,
		"zero64": int64(0),
		"zerof":  0.0,
		"one":    1,
		"empty":  "",
		"nolist": []any{},
		"list":   []any{"a"},
	}

	tests := []struct {
		key      string
		expected bool
	}{
		{key: "title", expected: true},
		{key: "missing", expected: false},
		{key: "null", expected: false},
		{key: "true", expected: true},
		{key: "false", expected: false},
		{key: "zero", expected: false},
		{key: "zero64", expected: false},
		{key: "zerof", expected: false},
		{key: "one", expected: true},
		{key: "empty", expected: false},
		{key: "nolist", expected: false},
		{key: "list", expected: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, meta.Truthy(tt.key))
		})
	}
}

func TestReadScalarFormatting(t *testing.T) {
	t.Parallel()

	meta, err := Read([]byte("---\ndifficulty: 3.0\ntitle: 0\nlink: false\n---\n"))
	require.NoError(t, err)

	difficulty, ok := meta.String("difficulty")
	assert.True(t, ok)
	assert.Equal(t, "3.0", difficulty)
	assert.False(t, meta.Truthy("title"))
	assert.False(t, meta.Truthy("link"))
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "none", FormatNone.String())
}
