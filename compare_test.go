package forwardlist_test

import (
	"strings"
	"testing"

	"github.com/mgnsk/forwardlist"
	. "github.com/mgnsk/forwardlist/internal/testing"
)

func TestEqual(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b *forwardlist.List[int]
		want bool
	}{
		{"both empty", forwardlist.New[int](), forwardlist.New[int](), true},
		{"equal", forwardlist.New(1, 2, 3), forwardlist.New(1, 2, 3), true},
		{"different element", forwardlist.New(1, 2, 3), forwardlist.New(1, 2, 4), false},
		{"different order", forwardlist.New(1, 2), forwardlist.New(2, 1), false},
		{"prefix", forwardlist.New(1, 2), forwardlist.New(1, 2, 3), false},
		{"empty and non-empty", forwardlist.New[int](), forwardlist.New(0), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			Equal(t, forwardlist.Equal(tc.a, tc.b), tc.want)
			Equal(t, forwardlist.Equal(tc.b, tc.a), tc.want)
			Equal(t, forwardlist.NotEqual(tc.a, tc.b), !tc.want)
			Equal(t, forwardlist.NotEqual(tc.b, tc.a), !tc.want)
		})
	}
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b *forwardlist.List[int]
		want int
	}{
		{"both empty", forwardlist.New[int](), forwardlist.New[int](), 0},
		{"equal", forwardlist.New(1, 2, 3), forwardlist.New(1, 2, 3), 0},
		{"smaller element", forwardlist.New(1, 2, 3), forwardlist.New(1, 2, 4), -1},
		{"prefix precedes extension", forwardlist.New(1, 2), forwardlist.New(1, 2, 0), -1},
		{"empty precedes non-empty", forwardlist.New[int](), forwardlist.New(0), -1},
		{"first element dominates", forwardlist.New(2), forwardlist.New(1, 9, 9), 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			Equal(t, forwardlist.Compare(tc.a, tc.b), tc.want)
			Equal(t, forwardlist.Compare(tc.b, tc.a), -tc.want)
		})
	}
}

func TestCompareTrichotomy(t *testing.T) {
	lists := []*forwardlist.List[int]{
		forwardlist.New[int](),
		forwardlist.New(1),
		forwardlist.New(1, 2),
		forwardlist.New(1, 2, 0),
		forwardlist.New(1, 2, 3),
		forwardlist.New(2),
	}

	for _, a := range lists {
		for _, b := range lists {
			count := 0
			if forwardlist.Less(a, b) {
				count++
			}
			if forwardlist.Less(b, a) {
				count++
			}
			if forwardlist.Equal(a, b) {
				count++
			}
			Equal(t, count, 1)
		}
	}
}

func TestOrderingDerivatives(t *testing.T) {
	a := forwardlist.New(1, 2, 3)
	b := forwardlist.New(1, 2, 4)

	True(t, forwardlist.Less(a, b))
	True(t, forwardlist.LessOrEqual(a, b))
	True(t, forwardlist.LessOrEqual(a, a.Clone()))
	True(t, forwardlist.Greater(b, a))
	True(t, forwardlist.GreaterOrEqual(b, a))
	True(t, forwardlist.GreaterOrEqual(b, b.Clone()))
	True(t, !forwardlist.Less(a, a.Clone()))
	True(t, !forwardlist.Greater(a, b))
	True(t, forwardlist.NotEqual(a, b))
	True(t, !forwardlist.NotEqual(a, a.Clone()))
}

func TestEqualFunc(t *testing.T) {
	a := forwardlist.New("One", "Two")
	b := forwardlist.New("one", "TWO")

	Equal(t, forwardlist.Equal(a, b), false)
	Equal(t, forwardlist.EqualFunc(a, b, strings.EqualFold), true)

	c := forwardlist.New("one")
	Equal(t, forwardlist.EqualFunc(a, c, strings.EqualFold), false)
}

func TestCompareFunc(t *testing.T) {
	type pair struct{ x, y int }

	a := forwardlist.New(pair{1, 1}, pair{2, 2})
	b := forwardlist.New(pair{1, 1}, pair{2, 3})

	cmpPair := func(p, q pair) int {
		if c := p.x - q.x; c != 0 {
			return c
		}
		return p.y - q.y
	}

	Equal(t, forwardlist.CompareFunc(a, a.Clone(), cmpPair), 0)
	True(t, forwardlist.CompareFunc(a, b, cmpPair) < 0)
	True(t, forwardlist.CompareFunc(b, a, cmpPair) > 0)
}
