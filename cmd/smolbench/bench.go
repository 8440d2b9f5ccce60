package main

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/simplysabir/smolvec"
)

var sink int

// Case is one workload run against one sequence implementation.
type Case struct {
	Name string
	Run  func(b *testing.B)
}

// Result is the measurement of a Case.
type Result struct {
	Name        string  `json:"name"`
	Iterations  int     `json:"iterations"`
	NsPerOp     int64   `json:"ns_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	HeapBuffers float64 `json:"heap_buffers_per_op"`
}

func pushSmolVec(n int) func(b *testing.B) {
	return func(b *testing.B) {
		for b.Loop() {
			var v smolvec.SmolVec[int]
			for i := range n {
				v.Push(i)
			}
			sink += v.Len()
		}
	}
}

func pushSlice(n int) func(b *testing.B) {
	return func(b *testing.B) {
		for b.Loop() {
			var s []int
			for i := range n {
				s = append(s, i)
			}
			runtime.KeepAlive(s)
			sink += len(s)
		}
	}
}

func popSmolVec(n int) func(b *testing.B) {
	return func(b *testing.B) {
		for b.Loop() {
			var v smolvec.SmolVec[int]
			for i := range n {
				v.Push(i)
			}
			for range n {
				x, _ := v.Pop()
				sink += x
			}
		}
	}
}

func popSlice(n int) func(b *testing.B) {
	return func(b *testing.B) {
		for b.Loop() {
			var s []int
			for i := range n {
				s = append(s, i)
			}
			for range n {
				sink += s[len(s)-1]
				s = s[:len(s)-1]
			}
			runtime.KeepAlive(s)
		}
	}
}

// DefaultCases returns every workload: small pushes stay inline, large
// pushes spill, and pops drain a small container.
func DefaultCases() []Case {
	return []Case{
		{Name: "push_small_vec", Run: pushSmolVec(4)},
		{Name: "push_std_vec", Run: pushSlice(4)},
		{Name: "push_large_small_vec", Run: pushSmolVec(1000)},
		{Name: "push_large_std_vec", Run: pushSlice(1000)},
		{Name: "pop_small_vec", Run: popSmolVec(4)},
		{Name: "pop_std_vec", Run: popSlice(4)},
	}
}

// SelectCases returns the cases whose names contain any of the
// comma-separated filters. An empty filter selects everything.
func SelectCases(all []Case, filter string) ([]Case, error) {
	if strings.TrimSpace(filter) == "" {
		return all, nil
	}
	var out []Case
	for _, c := range all {
		for _, f := range strings.Split(filter, ",") {
			if f = strings.TrimSpace(f); f != "" && strings.Contains(c.Name, f) {
				out = append(out, c)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no case matches %q", filter)
	}
	return out, nil
}

// measure runs c once under testing.Benchmark.
func measure(c Case) Result {
	before := smolvec.ReadAllocStats()
	r := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		c.Run(b)
	})
	delta := smolvec.ReadAllocStats().Sub(before)

	res := Result{
		Name:        c.Name,
		Iterations:  r.N,
		NsPerOp:     r.NsPerOp(),
		AllocsPerOp: r.AllocsPerOp(),
		BytesPerOp:  r.AllocedBytesPerOp(),
	}
	if r.N > 0 {
		// The counters include calibration rounds and, with -parallel > 1,
		// concurrent cases; this is an upper bound.
		res.HeapBuffers = float64(delta.Allocations) / float64(r.N)
	}
	return res
}

// Run measures cases with at most parallel running at once and returns the
// results in case order.
func Run(ctx context.Context, cases []Case, parallel int, logger *Logger) ([]Result, error) {
	results := make([]Result, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))

	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				logger.LogCase(ctx, Result{Name: c.Name}, err)
				return err
			}
			logger.WithCase(c.Name).DebugContext(ctx, "case started")
			results[i] = measure(c)
			if results[i].Iterations == 0 {
				err := fmt.Errorf("case %s: benchmark did not run", c.Name)
				logger.LogCase(ctx, results[i], err)
				return err
			}
			logger.LogCase(ctx, results[i], nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
