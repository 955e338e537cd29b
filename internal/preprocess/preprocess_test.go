package preprocess

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPreprocessor(t *testing.T) {
	t.Parallel()

	t.Run("ReplacesMatchingLine", func(t *testing.T) {
		t.Parallel()
		p, err := NewTagPreprocessor(`!problemlist`, func() (string, error) {
			return "<div>\ncard\n</div>", nil
		})
		require.NoError(t, err)

		out, err := p.Run([]string{"before", "!problemlist", "after"})
		require.NoError(t, err)
		assert.Equal(t, []string{"before", "<div>\ncard\n</div>", "after"}, out)
	})

	t.Run("MatchAnywhereReplacesWholeLine", func(t *testing.T) {
		t.Parallel()
		p, err := NewTagPreprocessor(`!problemlist`, func() (string, error) { return "X", nil })
		require.NoError(t, err)

		out, err := p.Run([]string{"see: !problemlist here"})
		require.NoError(t, err)
		assert.Equal(t, []string{"X"}, out)
	})

	t.Run("BuildsOncePerMatch", func(t *testing.T) {
		t.Parallel()
		calls := 0
		p, err := NewTagPreprocessor(`!problemlist`, func() (string, error) {
			calls++
			return "X", nil
		})
		require.NoError(t, err)

		out, err := p.Run([]string{"!problemlist", "mid", "!problemlist", "!problemlist"})
		require.NoError(t, err)
		assert.Equal(t, []string{"X", "mid", "X", "X"}, out)
		assert.Equal(t, 3, calls)
	})

	t.Run("NoMatchNoBuild", func(t *testing.T) {
		t.Parallel()
		p, err := NewTagPreprocessor(`!problemlist`, func() (string, error) {
			t.Fatal("build should not be called")
			return "", nil
		})
		require.NoError(t, err)

		in := []string{"a", "!problem_all", "", "b"}
		out, err := p.Run(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("BuildErrorPropagates", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		p, err := NewTagPreprocessor(`!problemlist`, func() (string, error) { return "", boom })
		require.NoError(t, err)

		out, err := p.Run([]string{"!problemlist"})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, out)
	})

	t.Run("InvalidPattern", func(t *testing.T) {
		t.Parallel()
		p, err := NewTagPreprocessor(`(`, nil)
		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	appendTag := func(tag string) Preprocessor {
		return Func(func(lines []string) ([]string, error) {
			return append(lines, tag), nil
		})
	}

	t.Run("PriorityOrder", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("low", 10, appendTag("low"))
		r.Register("high", 200, appendTag("high"))
		r.Register("mid", 175, appendTag("mid"))

		assert.Equal(t, []string{"high", "mid", "low"}, r.Names())
		out, err := r.Run(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"high", "mid", "low"}, out)
	})

	t.Run("TiesKeepRegistrationOrder", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("first", 175, appendTag("first"))
		r.Register("second", 175, appendTag("second"))
		assert.Equal(t, []string{"first", "second"}, r.Names())
	})

	t.Run("ReplaceExisting", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("a", 1, appendTag("old"))
		r.Register("a", 1, appendTag("new"))
		assert.Equal(t, 1, r.Len())

		out, err := r.Run(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"new"}, out)
	})

	t.Run("ErrorStopsChain", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		r := NewRegistry()
		r.Register("fails", 100, Func(func([]string) ([]string, error) { return nil, boom }))
		r.Register("after", 1, Func(func([]string) ([]string, error) {
			t.Fatal("should not run")
			return nil, nil
		}))

		_, err := r.Run([]string{"x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "preprocessor fails")
	})

	t.Run("Process", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		p, err := NewTagPreprocessor(`!tag`, func() (string, error) { return "A\nB", nil })
		require.NoError(t, err)
		r.Register("tag", 175, p)

		out, err := r.Process("# Title\n!tag\nend\n")
		require.NoError(t, err)
		assert.Equal(t, "# Title\nA\nB\nend\n", out)
	})

	t.Run("EmptyRegistryIsIdentity", func(t *testing.T) {
		t.Parallel()
		text := "a\nb"
		out, err := NewRegistry().Process(text)
		require.NoError(t, err)
		assert.Equal(t, text, out)
	})
}

func TestSplitJoinLines(t *testing.T) {
	t.Parallel()
	text := "a\n\nb\n"
	lines := SplitLines(text)
	assert.Equal(t, []string{"a", "", "b", ""}, lines)
	assert.Equal(t, text, JoinLines(lines))
	assert.Equal(t, 0, strings.Count(JoinLines(nil), "\n"))
}
