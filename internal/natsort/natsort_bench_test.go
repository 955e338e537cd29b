package natsort

import (
	"strconv"
	"testing"
)

// BenchmarkKeyOf measures key generation for a typical problem id.
func BenchmarkKeyOf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = KeyOf("toi2021-day2-problem10")
	}
}

// BenchmarkSort measures sorting a directory-sized list of ids.
func BenchmarkSort(b *testing.B) {
	ids := make([]string, 200)
	for i := range ids {
		ids[len(ids)-1-i] = "toi" + strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		items := append([]string(nil), ids...)
		Sort(items, func(s string) string { return s })
	}
}
