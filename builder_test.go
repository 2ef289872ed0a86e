package btreeset

import (
	"errors"
	"testing"
)

func TestSetBuilderAddAndBuild(t *testing.T) {
	b, err := NewSetBuilder[int](intConfig(4))
	if err != nil {
		t.Fatalf("NewSetBuilder: %v", err)
	}
	for _, v := range []int{3, 1, 2} {
		if err := b.Add(v); err != nil {
			t.Fatalf("Add(%d): %v", v, err)
		}
	}
	s := b.Build()
	if s.Size() != 3 {
		t.Fatalf("built set size: got %d want 3", s.Size())
	}
	if err := b.Add(4); !errors.Is(err, ErrBuilderCompleted) {
		t.Fatalf("Add after Build: got %v want ErrBuilderCompleted", err)
	}
}

func TestSetBuilderAddSortedFastPath(t *testing.T) {
	b, err := NewSetBuilder[int](intConfig(3))
	if err != nil {
		t.Fatalf("NewSetBuilder: %v", err)
	}
	for i := 0; i < 20; i++ {
		if err := b.AddSorted(i); err != nil {
			t.Fatalf("AddSorted(%d): %v", i, err)
		}
	}
	s := b.Build()
	if s.Size() != 20 {
		t.Fatalf("built set size: got %d want 20", s.Size())
	}
	i := 0
	for it := s.Begin(); !it.End(); it = it.Next() {
		if it.Value() != i {
			t.Fatalf("element %d: got %d want %d", i, it.Value(), i)
		}
		i++
	}
	if err := s.Tree().Verify(); err != nil {
		t.Fatalf("Verify after AddSorted build: %v", err)
	}
}

func TestMapBuilderAddAndBuild(t *testing.T) {
	b, err := NewMapBuilder[string, int](stringIntMapConfig(4))
	if err != nil {
		t.Fatalf("NewMapBuilder: %v", err)
	}
	if err := b.Add("b", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Add("a", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m := b.Build()
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) after build: got (%d,%v)", v, ok)
	}
	if err := b.Add("c", 3); !errors.Is(err, ErrBuilderCompleted) {
		t.Fatalf("Add after Build: got %v want ErrBuilderCompleted", err)
	}
}

func TestMultiSetBuilderAllowsDuplicates(t *testing.T) {
	b, err := NewMultiSetBuilder[int](intConfig(3))
	if err != nil {
		t.Fatalf("NewMultiSetBuilder: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := b.AddSorted(7); err != nil {
			t.Fatalf("AddSorted(7): %v", err)
		}
	}
	s := b.Build()
	if got := s.Count(7); got != 3 {
		t.Fatalf("Count(7): got %d want 3", got)
	}
}

func TestMultiMapBuilderAllowsDuplicateKeys(t *testing.T) {
	b, err := NewMultiMapBuilder[string, int](stringIntMapConfig(3))
	if err != nil {
		t.Fatalf("NewMultiMapBuilder: %v", err)
	}
	if err := b.Add("k", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Add("k", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m := b.Build()
	if got := m.CountKey("k"); got != 2 {
		t.Fatalf("CountKey(k): got %d want 2", got)
	}
}
