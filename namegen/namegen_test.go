package namegen

import "testing"

func TestSameSeedProducesSameSequence(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 5; i++ {
		na, nb := a.Next(), b.Next()
		if na != nb {
			t.Fatalf("name %d diverged: %q vs %q", i, na, nb)
		}
	}
}

func TestDifferentSeedsUsuallyDiffer(t *testing.T) {
	a := New(1).Next()
	b := New(2).Next()
	if a == b {
		t.Skip("distinct seeds happened to collide on the first name; not a failure")
	}
}

func TestNameIsNonEmpty(t *testing.T) {
	g := New(123)
	for i := 0; i < 10; i++ {
		if name := g.Next(); name == "" {
			t.Fatalf("Next() returned empty name at iteration %d", i)
		}
	}
}
