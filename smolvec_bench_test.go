package smolvec

import (
	"fmt"
	"runtime"
	"testing"
)

var sinkInt int

// reportGCs records how many collections the benchmark loop triggered.
func reportGCs(b *testing.B, run func()) {
	b.Helper()
	runtime.GC()
	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	b.ResetTimer()
	b.ReportAllocs()
	run()

	b.StopTimer()
	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)
	b.ReportMetric(float64(m2.NumGC-m1.NumGC), "gcs")
}

// BenchmarkPushSmall pushes fewer elements than InlineCapacity; the
// container should never touch the heap.
func BenchmarkPushSmall(b *testing.B) {
	b.Run("smolvec", func(b *testing.B) {
		reportGCs(b, func() {
			for b.Loop() {
				var v SmolVec[int]
				for i := range 4 {
					v.Push(i)
				}
				sinkInt += v.Len()
			}
		})
	})
	b.Run("slice", func(b *testing.B) {
		reportGCs(b, func() {
			for b.Loop() {
				var s []int
				for i := range 4 {
					s = append(s, i)
				}
				runtime.KeepAlive(s) // Force heap allocation
				sinkInt += len(s)
			}
		})
	})
}

func BenchmarkPushLarge(b *testing.B) {
	b.Run("smolvec", func(b *testing.B) {
		reportGCs(b, func() {
			for b.Loop() {
				var v SmolVec[int]
				for i := range 1000 {
					v.Push(i)
				}
				sinkInt += v.Len()
			}
		})
	})
	b.Run("slice", func(b *testing.B) {
		reportGCs(b, func() {
			for b.Loop() {
				var s []int
				for i := range 1000 {
					s = append(s, i)
				}
				sinkInt += len(s)
			}
		})
	})
}

func BenchmarkPop(b *testing.B) {
	b.Run("smolvec", func(b *testing.B) {
		reportGCs(b, func() {
			for b.Loop() {
				var v SmolVec[int]
				for i := range 4 {
					v.Push(i)
				}
				for range 4 {
					x, _ := v.Pop()
					sinkInt += x
				}
			}
		})
	})
	b.Run("slice", func(b *testing.B) {
		reportGCs(b, func() {
			for b.Loop() {
				var s []int
				for i := range 4 {
					s = append(s, i)
				}
				for range 4 {
					sinkInt += s[len(s)-1]
					s = s[:len(s)-1]
				}
			}
		})
	})
}

func BenchmarkClone(b *testing.B) {
	for _, n := range []int{8, 64} {
		v := New[int]()
		for i := range n {
			v.Push(i)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				sinkInt += v.Clone().Len()
			}
		})
	}
}
