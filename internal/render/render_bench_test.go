package render

import (
	"strconv"
	"testing"

	"github.com/leonardomso/problemgrid/internal/problem"
)

func benchProblems(n int) []problem.Problem {
	problems := make([]problem.Problem, n)
	for i := range problems {
		id := "toi" + strconv.Itoa(i)
		problems[i] = problem.Problem{
			ID:         id,
			Title:      "Problem " + strconv.Itoa(i),
			Source:     "TOI",
			Difficulty: "3",
			Tags:       "dp, greedy",
			Link:       "https://example.com/" + id,
		}
	}
	return problems
}

// BenchmarkRenderGrid measures the grid-list variant.
func BenchmarkRenderGrid(b *testing.B) {
	problems := benchProblems(100)
	r := New(GridList)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Render(problems)
	}
}

// BenchmarkRenderTiles measures the tile-card variant.
func BenchmarkRenderTiles(b *testing.B) {
	problems := benchProblems(100)
	r := New(TileCard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Render(problems)
	}
}
