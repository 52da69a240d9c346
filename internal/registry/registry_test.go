package registry

import "testing"

func TestRegistryRegisterGet(t *testing.T) {
	r := New[func() int]()
	r.Register("b", func() int { return 2 })
	r.Register("a", func() int { return 1 })

	f, err := r.Get("a")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if f() != 1 {
		t.Errorf("factory returned %d, expected 1", f())
	}

	if _, err := r.Get("missing"); err == nil {
		t.Error("Get() of unknown id should fail")
	}

	if !r.Exists("b") || r.Exists("c") {
		t.Error("Exists() returned wrong result")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", r.Len())
	}
}

func TestRegistryListSorted(t *testing.T) {
	r := New[string]()
	for _, id := range []string{"sniper", "basic", "aggressive"} {
		r.Register(id, id)
	}

	ids := r.List()
	expected := []string{"aggressive", "basic", "sniper"}
	if len(ids) != len(expected) {
		t.Fatalf("List() = %v, expected %v", ids, expected)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, ids[i], expected[i])
		}
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New[int]()
	r.Register("x", 1)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	r.Register("x", 2)
}
