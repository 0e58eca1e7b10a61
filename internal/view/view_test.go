package view

import (
	"errors"
	"testing"
)

func TestApplyOptimisticKeepsValueOnSuccess(t *testing.T) {
	value := 1
	err := ApplyOptimistic(
		func() int { return value },
		func(v int) { value = v },
		2,
		func() error { return nil },
	)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if value != 2 {
		t.Fatalf("value = %d, want 2", value)
	}
}

func TestApplyOptimisticRollsBackOnFailure(t *testing.T) {
	value := "before"
	observed := ""
	boom := errors.New("boom")

	err := ApplyOptimistic(
		func() string { return value },
		func(v string) { value = v },
		"after",
		func() error {
			observed = value
			return boom
		},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if observed != "after" {
		t.Fatalf("submit should see the optimistic value, saw %q", observed)
	}
	if value != "before" {
		t.Fatalf("value = %q, want rollback to %q", value, "before")
	}
}

func TestApplyOptimisticRollsBackSlices(t *testing.T) {
	items := []int{1, 2, 3}
	err := ApplyOptimistic(
		func() []int { return items },
		func(v []int) { items = v },
		[]int{1, 2},
		func() error { return errors.New("rejected") },
	)
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(items) != 3 {
		t.Fatalf("items = %v, want original three entries", items)
	}
}
