package btree

import (
	"errors"
	"testing"
)

func TestConfigValidateRequiresCompareOrLess(t *testing.T) {
	_, err := New[int, int](Config[int, int]{
		KeyOf:     func(v int) int { return v },
		MinDegree: 3,
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New with no Compare/Less: got %v want ErrInvalidConfig", err)
	}
}

func TestConfigValidateRejectsBothCompareAndLess(t *testing.T) {
	_, err := New[int, int](Config[int, int]{
		Compare:   func(a, b int) int { return a - b },
		Less:      func(a, b int) bool { return a < b },
		KeyOf:     func(v int) int { return v },
		MinDegree: 3,
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New with both Compare and Less: got %v want ErrInvalidConfig", err)
	}
}

func TestConfigValidateRequiresKeyOf(t *testing.T) {
	_, err := New[int, int](Config[int, int]{
		Less:      func(a, b int) bool { return a < b },
		MinDegree: 3,
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New with nil KeyOf: got %v want ErrInvalidConfig", err)
	}
}

func TestConfigValidateRejectsSmallMinDegree(t *testing.T) {
	_, err := New[int, int](Config[int, int]{
		Less:      func(a, b int) bool { return a < b },
		KeyOf:     func(v int) int { return v },
		MinDegree: 2,
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New with MinDegree=2: got %v want ErrInvalidConfig", err)
	}
}

func TestConfigDegreeDerivedFromTargetNodeBytesHasFloor(t *testing.T) {
	tree, err := New[int, int](Config[int, int]{
		Less:            func(a, b int) bool { return a < b },
		KeyOf:           func(v int) int { return v },
		TargetNodeBytes: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tree.Degree() < 3 {
		t.Fatalf("Degree() with tiny TargetNodeBytes: got %d want >= 3", tree.Degree())
	}
}

func TestConfigDegreeHonorsMinDegree(t *testing.T) {
	tree, err := New[int, int](Config[int, int]{
		Less:      func(a, b int) bool { return a < b },
		KeyOf:     func(v int) int { return v },
		MinDegree: 5,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := tree.Degree(); got != 5 {
		t.Fatalf("Degree(): got %d want 5", got)
	}
}
