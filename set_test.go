package btreeset

import "testing"

func intConfig(b int) Config[int] {
	return Config[int]{
		Less:      func(a, b int) bool { return a < b },
		MinDegree: b,
	}
}

func newIntSet(t *testing.T, b int) *Set[int] {
	t.Helper()
	s, err := NewSet[int](intConfig(b))
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func TestSetInsertContainsErase(t *testing.T) {
	s := newIntSet(t, 4)
	if !s.Insert(10) {
		t.Fatalf("first insert of 10 should report true")
	}
	if s.Insert(10) {
		t.Fatalf("second insert of 10 should report false")
	}
	if !s.Contains(10) {
		t.Fatalf("set should contain 10")
	}
	if s.Contains(20) {
		t.Fatalf("set should not contain 20")
	}
	if s.Size() != 1 {
		t.Fatalf("size: got %d want 1", s.Size())
	}
	if !s.Erase(10) {
		t.Fatalf("erase of present key should report true")
	}
	if s.Erase(10) {
		t.Fatalf("erase of absent key should report false")
	}
	if !s.Empty() {
		t.Fatalf("set should be empty after erasing its only key")
	}
}

func TestSetLowerBoundAndIteration(t *testing.T) {
	s := newIntSet(t, 3)
	for _, v := range []int{5, 1, 3, 2, 4} {
		s.Insert(v)
	}
	it := s.LowerBound(3)
	if it.End() || it.Value() != 3 {
		t.Fatalf("LowerBound(3): got %v want 3", it)
	}
	var got []int
	for it := s.Begin(); !it.End(); it = it.Next() {
		got = append(got, it.Value())
	}
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("iteration: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("iteration: got %v want %v", got, want)
		}
	}
}

func TestSetClear(t *testing.T) {
	s := newIntSet(t, 3)
	for i := 0; i < 10; i++ {
		s.Insert(i)
	}
	s.Clear()
	if !s.Empty() || s.Size() != 0 {
		t.Fatalf("set not empty after Clear")
	}
}
