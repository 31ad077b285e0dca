package safejson_test

import (
	"context"
	"fmt"
	"testing"

	safejson "github.com/safejson/safejson"
)

// parseIntAt tags failures with the element's original position.
func parseIntAt(s string, i int) safejson.Result[int64] {
	return safejson.ResultFromOption(
		safejson.ParseInt(s),
		safejson.ErrorFromMessagef("Element at index %d is not an integer.", i),
	)
}

func TestTraverse_AllSucceedPreservesOrderAndLength(t *testing.T) {
	xs := []string{"1", "2", "3"}
	r := safejson.Traverse(xs, parseIntAt)
	if !r.IsOk() {
		t.Fatalf("expected success, got %v", r.Err().Messages())
	}
	got := r.UnwrapOr(nil)
	if len(got) != len(xs) {
		t.Fatalf("length must equal input length: %d", len(got))
	}
	for i, want := range []int64{1, 2, 3} {
		if got[i] != want {
			t.Fatalf("order not preserved at %d: %d", i, got[i])
		}
	}
}

func TestTraverse_ErrorSetCoversEveryFailingIndex(t *testing.T) {
	xs := []string{"1", "x", "3", "y"}
	r := safejson.Traverse(xs, parseIntAt)
	if !r.IsFail() {
		t.Fatalf("expected failure")
	}
	e := r.Err()
	if e.Len() != 2 {
		t.Fatalf("expected one message per failing index, got %v", e.Messages())
	}
	if !e.HasMessage("Element at index 1 is not an integer.") ||
		!e.HasMessage("Element at index 3 is not an integer.") {
		t.Fatalf("messages must reference positions 1 and 3: %v", e.Messages())
	}
}

func TestTraverse_EmptyInputIsIdentity(t *testing.T) {
	r := safejson.Traverse(nil, parseIntAt)
	if !r.IsOk() {
		t.Fatalf("traverse of empty input must succeed")
	}
	if got := r.UnwrapOr(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", got)
	}
}

func TestTraverse_VisitsEveryIndexExactlyOnce(t *testing.T) {
	visited := make([]int, 4)
	xs := []string{"bad", "1", "bad", "2"}
	_ = safejson.Traverse(xs, func(s string, i int) safejson.Result[int64] {
		visited[i]++
		return parseIntAt(s, i)
	})
	for i, n := range visited {
		if n != 1 {
			t.Fatalf("index %d visited %d times", i, n)
		}
	}
}

func TestTraverse_DuplicateMessagesCollapse(t *testing.T) {
	xs := []string{"x", "x", "x"}
	r := safejson.Traverse(xs, func(s string, _ int) safejson.Result[int64] {
		return safejson.ResultFromOption(safejson.ParseInt(s), safejson.ErrorFromMessage("not an integer"))
	})
	if r.Err().Len() != 1 {
		t.Fatalf("identical messages must collapse to one: %v", r.Err().Messages())
	}
}

func TestSequence(t *testing.T) {
	rs := []safejson.Result[int]{safejson.Ok(1), safejson.Ok(2)}
	out := safejson.Sequence(rs)
	if !out.IsOk() || len(out.UnwrapOr(nil)) != 2 {
		t.Fatalf("sequence of successes failed")
	}

	rs = append(rs, safejson.FailMessage[int]("third is bad"))
	out = safejson.Sequence(rs)
	if !out.IsFail() || !out.Err().HasMessage("third is bad") {
		t.Fatalf("sequence must surface the failure")
	}
}

func TestTraverseParallel_MatchesSequential(t *testing.T) {
	xs := make([]string, 100)
	for i := range xs {
		if i%7 == 0 {
			xs[i] = fmt.Sprintf("bad%d", i)
		} else {
			xs[i] = fmt.Sprintf("%d", i)
		}
	}
	seq := safejson.Traverse(xs, parseIntAt)
	for _, limit := range []int{0, 1, 4, 200} {
		par := safejson.TraverseParallel(context.Background(), xs, parseIntAt, safejson.TraverseOpt{MaxConcurrency: limit})
		if par.IsFail() != seq.IsFail() {
			t.Fatalf("limit %d: state diverged", limit)
		}
		if !par.Err().Equal(seq.Err()) {
			t.Fatalf("limit %d: error sets diverged: %v vs %v", limit, par.Err().Messages(), seq.Err().Messages())
		}
	}
}

func TestTraverseParallel_SuccessPreservesOrder(t *testing.T) {
	xs := []string{"10", "20", "30", "40"}
	r := safejson.TraverseParallel(context.Background(), xs, parseIntAt, safejson.TraverseOpt{MaxConcurrency: 2})
	if !r.IsOk() {
		t.Fatalf("expected success: %v", r.Err().Messages())
	}
	got := r.UnwrapOr(nil)
	for i, want := range []int64{10, 20, 30, 40} {
		if got[i] != want {
			t.Fatalf("order lost at %d: %d", i, got[i])
		}
	}
}

func TestTraverseParallel_EmptyInput(t *testing.T) {
	r := safejson.TraverseParallel(context.Background(), nil, parseIntAt)
	if !r.IsOk() || len(r.UnwrapOr(nil)) != 0 {
		t.Fatalf("empty parallel traverse must be Ok(empty)")
	}
}

func TestTraverseParallel_CanceledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	xs := []string{"1", "2", "3"}
	r := safejson.TraverseParallel(ctx, xs, parseIntAt, safejson.TraverseOpt{MaxConcurrency: 1})
	if !r.IsFail() {
		t.Fatalf("pre-canceled context must yield failure")
	}
	if r.Err().IsEmpty() {
		t.Fatalf("cancellation must be reported in the Error")
	}
}
