package Trees

import (
	"slices"
	"testing"
)

func drain[T any](next func() (T, bool)) []T {
	var s []T
	for v, ok := next(); ok; v, ok = next() {
		s = append(s, v)
	}
	return s
}

func TestBST_Insert(t *testing.T) {
	tree := NewBST[int]()
	content := make(map[int]struct{})
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			_, in := content[b]
			if tree.Insert(b) == in {
				t.Errorf("failed to insert key %v", b)
			}
			if tree.Insert(b) {
				t.Errorf("can insert a second time key %v", b)
			}
			content[b] = struct{}{}
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Has(tAddValRange + 1) {
		t.Errorf("tree has non existent key %v", tAddValRange+1)
	}
}

func TestBST_Remove(t *testing.T) {
	tree := NewBST[int]()
	for _, v := range []int{50, 30, 70, 60, 65} {
		tree.Insert(v)
	}
	//the successor of the root has a right child, which must survive the splice
	if !tree.Remove(50) {
		t.Fatal("failed to delete key 50")
	}
	if s := drain(tree.InOrder()); !slices.Equal(s, []int{30, 60, 65, 70}) {
		t.Fatalf("wrong remainder %v", s)
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}

	tree2 := NewBST[int]()
	content := make(map[int]struct{})
	if tree2.Remove(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			tree2.Insert(b)
			content[b] = struct{}{}
		}
		for i := range rg.Intn(len(a)) {
			_, in := content[a[i]]
			if tree2.Remove(a[i]) != in {
				t.Errorf("failed to delete key %v", a[i])
			}
			if tree2.Remove(a[i]) {
				t.Errorf("can delete a second time key %v", a[i])
			}
			delete(content, a[i])
		}
	}
	if int(tree2.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree2.Size(), len(content))
	}
	if tree2.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	for k := range content {
		if !tree2.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	s := drain(tree2.InOrder())
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
}

func TestBST_Orders(t *testing.T) {
	tree := NewBST[int]()
	if _, ok := tree.InOrder()(); ok {
		t.Error("empty tree yields a value")
	}
	if _, ok := tree.PreOrder()(); ok {
		t.Error("empty tree yields a value")
	}
	if _, ok := tree.PostOrder()(); ok {
		t.Error("empty tree yields a value")
	}
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(v)
	}
	if s := drain(tree.InOrder()); !slices.Equal(s, []int{20, 30, 40, 50, 60, 70, 80}) {
		t.Errorf("wrong in order %v", s)
	}
	if s := drain(tree.PreOrder()); !slices.Equal(s, []int{50, 30, 20, 40, 70, 60, 80}) {
		t.Errorf("wrong pre order %v", s)
	}
	if s := drain(tree.PostOrder()); !slices.Equal(s, []int{20, 40, 30, 60, 80, 70, 50}) {
		t.Errorf("wrong post order %v", s)
	}

	tree2 := NewBST[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		tree2.Insert(b)
		content[b] = struct{}{}
	}
	in, pre, post := drain(tree2.InOrder()), drain(tree2.PreOrder()), drain(tree2.PostOrder())
	if !slices.IsSorted(in) {
		t.Errorf("sorted is not sorted")
	}
	if len(in) != len(content) || len(pre) != len(content) || len(post) != len(content) {
		t.Errorf("order sizes are %d %d %d, want %d", len(in), len(pre), len(post), len(content))
	}
	slices.Sort(pre)
	slices.Sort(post)
	if !slices.Equal(pre, in) || !slices.Equal(post, in) {
		t.Errorf("orders visit different values")
	}
}

func TestBST_Degenerate(t *testing.T) {
	tree := NewBST[int]()
	for i := range 2000 { //sorted input degrades to a linked list but must stay correct
		tree.Insert(i)
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	if v, ok := tree.Minimum(); !ok || v != 0 {
		t.Errorf("wrong minimum %d", v)
	}
	if v, ok := tree.Maximum(); !ok || v != 1999 {
		t.Errorf("wrong maximum %d", v)
	}
	if !slices.IsSorted(drain(tree.InOrder())) {
		t.Errorf("sorted is not sorted")
	}
	for i := range 1000 {
		if !tree.Remove(i * 2) {
			t.Fatalf("failed to delete key %v", i*2)
		}
	}
	if tree.Size() != 1000 || tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestBST_PreSucc(t *testing.T) {
	tree := NewBST[int]()
	const n = 1000
	content := make([]int, n+2)
	content[0] = -1
	content[n+1] = n * 3
	for i := 1; i <= n; i++ {
		content[i] = i * 2
	}
	for _, i := range rg.Perm(len(content)) {
		tree.Insert(content[i])
	}
	for i := 1; i <= n; i++ {
		if a, ok := tree.Predecessor(content[i]); !ok || a != content[i-1] {
			t.Fatalf("wrong predecessor %d %d", a, content[i-1])
		}
		if a, ok := tree.Successor(content[i]); !ok || a != content[i+1] {
			t.Fatalf("wrong successor %d %d", a, content[i+1])
		}
	}
	if _, ok := tree.Predecessor(content[0]); ok {
		t.Fatal("shouldn't have predecessor")
	}
	if _, ok := tree.Successor(content[len(content)-1]); ok {
		t.Fatal("shouldn't have successor")
	}
	if _, ok := NewBST[int]().Minimum(); ok {
		t.Error("empty tree has a minimum")
	}
	if _, ok := NewBST[int]().Maximum(); ok {
		t.Error("empty tree has a maximum")
	}
}
