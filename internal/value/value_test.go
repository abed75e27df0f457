package value

import "testing"

func TestTypeOfIdentity(t *testing.T) {
	if TypeOf[int64]() != TypeOf[int64]() {
		t.Errorf("TypeOf[int64]() should be stable across calls")
	}
	if TypeOf[int64]() == TypeOf[float64]() {
		t.Errorf("TypeOf[int64]() and TypeOf[float64]() should differ")
	}
}

func TestIsTypeAndAs(t *testing.T) {
	v := Int(42)
	if !IsType[int64](v) {
		t.Errorf("IsType[int64] should be true for an Int value")
	}
	if IsType[string](v) {
		t.Errorf("IsType[string] should be false for an Int value")
	}
	n, ok := As[int64](v)
	if !ok || n != 42 {
		t.Errorf("As[int64] = %d, %v, want 42, true", n, ok)
	}
	if _, ok := As[string](v); ok {
		t.Errorf("As[string] on an Int value should fail")
	}
}

func TestMustAsPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustAs should panic on type mismatch")
		}
	}()
	MustAs[string](Int(1))
}

func TestCloneDeepCopiesContainers(t *testing.T) {
	inner := NewObject()
	inner.Insert("x", Int(1))
	list := New(List{New(inner)})

	cloned := list.Clone()
	clonedList := MustAs[List](cloned)
	clonedObj := MustAs[*Object](clonedList[0])
	clonedObj.Insert("x", Int(99))

	if v, _ := inner.Get("x"); MustAs[int64](v) != 1 {
		t.Errorf("cloning should not mutate the original object")
	}
	if v, _ := clonedObj.Get("x"); MustAs[int64](v) != 99 {
		t.Errorf("the clone's own mutation should stick")
	}
}

func TestSwap(t *testing.T) {
	a, b := Int(1), Str("two")
	a.Swap(&b)
	if MustAs[string](a) != "two" {
		t.Errorf("a after swap = %v, want string \"two\"", a)
	}
	if MustAs[int64](b) != 1 {
		t.Errorf("b after swap = %v, want int64 1", b)
	}
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Insert("z", Int(1))
	o.Insert("a", Int(2))
	o.Insert("m", Int(3))
	want := []string{"z", "a", "m"}
	got := o.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestObjectInsertOverwriteKeepsPosition(t *testing.T) {
	o := NewObject()
	o.Insert("a", Int(1))
	o.Insert("b", Int(2))
	o.Insert("a", Int(99))
	if o.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (re-insert should not duplicate the key)", o.Len())
	}
	v, _ := o.Get("a")
	if MustAs[int64](v) != 99 {
		t.Errorf("Get(a) = %v, want the overwritten value 99", v)
	}
	if got := o.Keys(); got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys() = %v, want [a b] (overwrite should not move the key)", got)
	}
}
