package Lists

import (
	"slices"
	"testing"
)

func TestVector_Index(t *testing.T) {
	v := NewVector[int](4)
	if _, ok := v.Get(0); ok {
		t.Error("empty vector has index 0")
	}
	if v.Set(0, 1) {
		t.Error("set out of range")
	}
	for i := range 100 {
		v.Append(i)
	}
	if v.Size() != 100 {
		t.Fatalf("vector size is %d, want 100", v.Size())
	}
	for i := range 100 {
		if got, ok := v.Get(i); !ok || got != i {
			t.Fatalf("wrong value %d at %d", got, i)
		}
	}
	if _, ok := v.Get(-1); ok {
		t.Error("has index -1")
	}
	if _, ok := v.Get(100); ok {
		t.Error("has index past the end")
	}
	if !v.Set(50, -7) {
		t.Fatal("failed to set index 50")
	}
	if got, _ := v.Get(50); got != -7 {
		t.Fatalf("wrong value %d at 50", got)
	}
}

func TestVector_InsertRemove(t *testing.T) {
	v := NewVector[int](0)
	shadow := make([]int, 0)
	for range 2000 {
		switch x := rg.Intn(1 << 10); rg.Intn(3) {
		case 0:
			i := rg.Intn(len(shadow) + 1)
			if !v.InsertAt(i, x) {
				t.Fatalf("failed to insert at %d", i)
			}
			shadow = slices.Insert(shadow, i, x)
		case 1:
			if len(shadow) == 0 {
				if _, ok := v.RemoveAt(0); ok {
					t.Fatal("removed from an empty vector")
				}
				break
			}
			i := rg.Intn(len(shadow))
			got, ok := v.RemoveAt(i)
			if !ok || got != shadow[i] {
				t.Fatalf("wrong value %d at %d, want %d", got, i, shadow[i])
			}
			shadow = slices.Delete(shadow, i, i+1)
		default:
			v.Append(x)
			shadow = append(shadow, x)
		}
		if int(v.Size()) != len(shadow) {
			t.Fatalf("vector size is %d, want %d", v.Size(), len(shadow))
		}
	}
	if !slices.Equal(v.Values(), shadow) {
		t.Error("vector and shadow diverged")
	}
	if !v.InsertAt(int(v.Size()), 1) { //inserting at Size appends
		t.Error("failed to insert at the end")
	}
	if v.InsertAt(int(v.Size())+1, 1) {
		t.Error("inserted past the end")
	}
}

func TestVector_Search(t *testing.T) {
	v := NewVector[string](0)
	for _, s := range []string{"a", "b", "c", "b"} {
		v.Append(s)
	}
	if i := v.IndexOf("b"); i != 1 {
		t.Errorf("wrong index %d, want 1", i)
	}
	if i := v.IndexOf("d"); i != -1 {
		t.Errorf("wrong index %d, want -1", i)
	}
	if !v.Has("c") || v.Has("d") {
		t.Error("wrong membership")
	}
	if !v.Remove("b") { //first occurrence only
		t.Fatal("failed to remove b")
	}
	if !slices.Equal(v.Values(), []string{"a", "c", "b"}) {
		t.Errorf("wrong remainder %v", v.Values())
	}
	if v.Remove("d") {
		t.Error("removed a non existent value")
	}
}
