package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrdered(t *testing.T) {
	tests := []struct {
		t1, t2 int
		want   Order
	}{
		{1, 2, Smaller},
		{2, 2, Equal},
		{3, 2, Greater},
	}
	for _, test := range tests {
		if got := Ordered(test.t1, test.t2); got != test.want {
			t.Errorf("Ordered(%d, %d) = %d, want %d", test.t1, test.t2, got, test.want)
		}
	}
}

func TestSortBy(t *testing.T) {
	type pair struct {
		Key   uint16
		Value string
	}
	ps := []pair{{3, "c"}, {1, "a"}, {2, "b"}}

	Sort(ps, By(func(p pair) uint16 { return p.Key }))

	if diff := cmp.Diff([]pair{{1, "a"}, {2, "b"}, {3, "c"}}, ps); diff != "" {
		t.Fatalf("unexpected diff (-want/+got):\n%s", diff)
	}
}
