package appearance

import "testing"

func TestDocument_AbsentTargetsAreNoOps(t *testing.T) {
	t.Parallel()

	d := NewDocument()

	// Lookups for unregistered selectors return nil, and nil elements
	// swallow every operation.
	el := d.Container(".does-not-exist")
	if el != nil {
		t.Fatalf("expected nil for unregistered selector")
	}
	el.SetBackground("#fff")
	el.ClearBackground()
	if got := el.Background(); got != "" {
		t.Fatalf("nil element background = %q", got)
	}
}

func TestDocument_RegisterContainerIsStable(t *testing.T) {
	t.Parallel()

	d := NewDocument()
	a := d.RegisterContainer(".panel")
	b := d.RegisterContainer(".panel")
	if a != b {
		t.Fatalf("re-registering a selector must return the same element")
	}
	if d.RegisterContainer("  ") != nil {
		t.Fatalf("blank selector must not register")
	}
}

func TestDocument_ClassSetSemantics(t *testing.T) {
	t.Parallel()

	d := NewDocument()
	d.AddClass("dark")
	d.AddClass("dark")
	if got := d.Classes(); len(got) != 1 {
		t.Fatalf("duplicate AddClass produced %v", got)
	}
	d.RemoveClass("dark")
	d.RemoveClass("dark")
	if d.HasClass("dark") {
		t.Fatalf("class survived removal")
	}
}
