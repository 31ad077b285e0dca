package safejson

import (
	"context"
	"sync"

	"github.com/safejson/safejson/i18n"
)

// Traverse applies f to every element of xs and returns Ok with the converted
// slice (order preserved, length len(xs)) only when every element converts.
// Otherwise it returns a single failure whose Error is the Combine-fold, in
// ascending index order, of every failing element's Error.
//
// Traverse does not short-circuit: every index is visited exactly once even
// after an earlier failure, so the final Error covers the entire sequence.
// The index passed to f is the element's position in the original slice.
// An empty xs yields Ok of an empty slice.
func Traverse[T, U any](xs []T, f func(T, int) Result[U]) Result[[]U] {
	out := make([]U, len(xs))
	var agg Error
	failed := false
	for i, x := range xs {
		r := f(x, i)
		if r.ok {
			out[i] = r.value
			continue
		}
		failed = true
		agg = Combine(agg, r.err)
	}
	if failed {
		return Fail[[]U](agg)
	}
	return Ok(out)
}

// Sequence converts a slice of Results into a Result of slice under the
// Traverse aggregation contract.
func Sequence[T any](rs []Result[T]) Result[[]T] {
	return Traverse(rs, func(r Result[T], _ int) Result[T] { return r })
}

// TraverseParallel is Traverse with concurrent element evaluation. The
// aggregation contract is unchanged: results land in original order and
// errors are combined in ascending index order after every worker finishes,
// so the outcome matches the sequential Traverse for a pure f.
//
// Cancellation stops launching new element evaluations; in-flight calls
// complete. Indices never launched fail with a cancellation message so the
// all-or-nothing contract still holds.
func TraverseParallel[T, U any](ctx context.Context, xs []T, f func(T, int) Result[U], opts ...TraverseOpt) Result[[]U] {
	n := len(xs)
	if n == 0 {
		return Ok([]U{})
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var opt TraverseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	limit := opt.MaxConcurrency
	if limit <= 0 || limit > n {
		limit = n
	}

	// one slot per index; no shared mutable accumulator
	results := make([]Result[U], n)
	launched := make([]bool, n)
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := range xs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
		launched[i] = true
		wg.Add(1)
		go func(i int, x T) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = f(x, i)
		}(i, xs[i])
	}
	wg.Wait()

	for i := range results {
		if !launched[i] {
			results[i] = Fail[U](ErrorFromMessage(i18n.T(CodeCanceled, nil)))
		}
	}
	return Sequence(results)
}
