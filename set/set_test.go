package set

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	s := New[int]()

	require.Zero(t, s.Len(), "new set should be empty")
	require.True(t, s.IsEmpty())
	require.False(t, s.Contains(1))
	require.False(t, s.Remove(1), "removing from an empty set should report absence")
	require.Empty(t, s.Values())
	require.Equal(t, "{}", s.String())

	_, ok := s.At(0)
	require.False(t, ok, "rank access on an empty set should be absent")

	_, ok = s.Min()
	require.False(t, ok)

	_, ok = s.Max()
	require.False(t, ok)
}

func TestNewFunc_NilCompare(t *testing.T) {
	require.Panics(t, func() { NewFunc[int](nil) })
}

func TestNewFunc_ReverseOrder(t *testing.T) {
	s := NewFunc(func(a, b int) int { return cmp.Compare(b, a) }, WithSelfCheck(true))
	for _, v := range []int{2, 9, 4, 7} {
		require.True(t, s.Insert(v))
	}

	require.Equal(t, []int{9, 7, 4, 2}, s.Values(), "comparator should define the iteration order")

	v, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, 9, v, "min should follow the comparator, not the natural order")
}

func TestInsert_Ordering(t *testing.T) {
	s := New[int](WithSelfCheck(true))
	for _, v := range []int{5, 3, 8, 1} {
		require.True(t, s.Insert(v))
	}

	require.Equal(t, []int{1, 3, 5, 8}, s.Values())
}

func TestInsert_Duplicate(t *testing.T) {
	s := New[int](WithSelfCheck(true))

	require.True(t, s.Insert(7), "first insert should report a new element")
	require.False(t, s.Insert(7), "second insert of an equal value should be rejected")
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains(7))
}

func TestRemove_MiddleElement(t *testing.T) {
	s := New[int](WithSelfCheck(true))
	for v := 1; v <= 10; v++ {
		require.True(t, s.Insert(v))
	}

	require.True(t, s.Remove(5))
	require.False(t, s.Contains(5))
	require.Equal(t, 9, s.Len())
	require.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9, 10}, s.Values())
}

func TestFrom_CollapsesDuplicates(t *testing.T) {
	s := From([]int{4, 4, 2, 2, 1})

	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{1, 2, 4}, s.Values())
}

func TestFrom_DoesNotMutateInput(t *testing.T) {
	items := []int{3, 1, 2}
	s := From(items)

	require.Equal(t, []int{3, 1, 2}, items, "From should sort a copy, not the caller's slice")
	require.Equal(t, []int{1, 2, 3}, s.Values())
}

func TestFromFunc_KeepsFirstDuplicate(t *testing.T) {
	type entry struct {
		key  int
		name string
	}

	s := FromFunc(
		func(a, b entry) int { return cmp.Compare(a.key, b.key) },
		[]entry{{1, "first"}, {2, "two"}, {1, "second"}},
	)

	require.Equal(t, 2, s.Len())

	got, ok := s.Get(entry{key: 1})
	require.True(t, ok)
	require.Equal(t, "first", got.name, "the first of equal items should win")
}

func TestCollect(t *testing.T) {
	s := Collect(slices.Values([]int{3, 1, 4, 1, 5, 9, 2, 6}))

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 9}, s.Values())
}

func TestCollectFunc(t *testing.T) {
	s := CollectFunc(
		func(a, b string) int { return cmp.Compare(len(a), len(b)) },
		slices.Values([]string{"ccc", "a", "bb"}),
	)

	require.Equal(t, []string{"a", "bb", "ccc"}, s.Values())
}

func TestAt_RandomInsertionOrder(t *testing.T) {
	vals := make([]int, 100)
	for i := range vals {
		vals[i] = i + 1
	}
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	s := New[int](WithSelfCheck(true))
	for _, v := range vals {
		require.True(t, s.Insert(v))
	}

	for i := 0; i < 100; i++ {
		v, ok := s.At(i)
		require.True(t, ok)
		require.Equal(t, i+1, v, "rank %d should hold value %d", i, i+1)
	}

	_, ok := s.At(100)
	require.False(t, ok)

	_, ok = s.At(-1)
	require.False(t, ok)
}

func TestAt_MatchesForwardIteration(t *testing.T) {
	s := From([]int{30, 10, 50, 20, 40})

	i := 0
	for v := range s.All() {
		got, ok := s.At(i)
		require.True(t, ok)
		require.Equal(t, v, got, "At(%d) should match the %d-th iterated element", i, i)
		i++
	}
	require.Equal(t, s.Len(), i)
}

func TestGet_ReturnsStoredElement(t *testing.T) {
	type entry struct {
		key  int
		name string
	}

	s := NewFunc(func(a, b entry) int { return cmp.Compare(a.key, b.key) })
	require.True(t, s.Insert(entry{key: 1, name: "stored"}))

	got, ok := s.Get(entry{key: 1, name: "probe"})
	require.True(t, ok)
	require.Equal(t, "stored", got.name, "Get should return the stored element, not the probe")

	_, ok = s.Get(entry{key: 2})
	require.False(t, ok)
}

func TestMinMax(t *testing.T) {
	s := New[int](WithSelfCheck(true))
	for _, v := range []int{42, 17, 99, 3, 64} {
		require.True(t, s.Insert(v))
	}

	lo, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, 3, lo)

	hi, ok := s.Max()
	require.True(t, ok)
	require.Equal(t, 99, hi)
}

func TestClear_Reuse(t *testing.T) {
	s := New[int](WithSelfCheck(true))
	for v := 0; v < 50; v++ {
		require.True(t, s.Insert(v))
	}

	s.Clear()
	require.Zero(t, s.Len())
	require.True(t, s.IsEmpty())
	require.False(t, s.Contains(25))

	require.True(t, s.Insert(7), "a cleared set should accept new elements")
	require.Equal(t, []int{7}, s.Values())
}

func TestClone_Independent(t *testing.T) {
	s := From([]int{1, 2, 3})
	c := s.Clone()

	require.True(t, s.Insert(4))
	require.True(t, c.Remove(2))

	require.Equal(t, []int{1, 2, 3, 4}, s.Values())
	require.Equal(t, []int{1, 3}, c.Values())
}

func TestString(t *testing.T) {
	require.Equal(t, "{1 2 3}", From([]int{3, 1, 2}).String())
	require.Equal(t, "{a}", From([]string{"a"}).String())
}

func TestWithCapacity(t *testing.T) {
	s := New[int](WithCapacity(1000), WithSelfCheck(true))
	for v := 0; v < 1000; v++ {
		require.True(t, s.Insert(v))
	}

	require.Equal(t, 1000, s.Len())

	// Negative capacity is ignored.
	require.NotPanics(t, func() { New[int](WithCapacity(-5)).Insert(1) })
}
