package Ranges

import (
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestFenwick_Sums(t *testing.T) {
	u := NewFenwick[int](10)
	if u.Len() != 10 {
		t.Fatalf("tree length is %d, want 10", u.Len())
	}
	u.Update(3, 5)
	if s := u.Prefix(5); s != 5 {
		t.Errorf("prefix sum to 5 is %d, want 5", s)
	}
	if s := u.Prefix(2); s != 0 {
		t.Errorf("prefix sum to 2 is %d, want 0", s)
	}
	if s := u.Range(3, 5); s != 5 {
		t.Errorf("range sum of [3, 5] is %d, want 5", s)
	}
	if s := u.Prefix(0); s != 0 {
		t.Errorf("empty prefix sums to %d", s)
	}
}

func TestFenwick_Random(t *testing.T) {
	const n = 500
	u := NewFenwick[int](n)
	shadow := make([]int, n+1)
	for range 4000 {
		i, delta := 1+rg.Intn(n), rg.Intn(200)-100
		u.Update(i, delta)
		shadow[i] += delta
		{
			j, want := 1+rg.Intn(n), 0
			for k := 1; k <= j; k++ {
				want += shadow[k]
			}
			if got := u.Prefix(j); got != want {
				t.Fatalf("prefix sum to %d is %d, want %d", j, got, want)
			}
		}
		{
			l, r := 1+rg.Intn(n), 1+rg.Intn(n)
			if l > r {
				l, r = r, l
			}
			want := 0
			for k := l; k <= r; k++ {
				want += shadow[k]
			}
			if got := u.Range(l, r); got != want {
				t.Fatalf("range sum of [%d, %d] is %d, want %d", l, r, got, want)
			}
		}
	}
}

func TestFenwick_Float(t *testing.T) {
	u := NewFenwick[float64](8)
	for i := 1; i <= 8; i++ {
		u.Update(i, float64(i)/2)
	}
	if s := u.Range(1, 8); s != 18 {
		t.Errorf("range sum of [1, 8] is %v, want 18", s)
	}
	if s := u.Range(2, 3); s != 2.5 {
		t.Errorf("range sum of [2, 3] is %v, want 2.5", s)
	}
}

func TestFenwick_Bounds(t *testing.T) {
	u := NewFenwick[int](5)
	for _, f := range []func(){
		func() { u.Update(0, 1) },
		func() { u.Update(6, 1) },
		func() { u.Prefix(-1) },
		func() { u.Prefix(6) },
		func() { u.Range(2, 1) },
		func() { u.Range(0, 3) },
		func() { NewFenwick[int](-1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("no panic for an index outside the tree")
				}
			}()
			f()
		}()
	}
}
