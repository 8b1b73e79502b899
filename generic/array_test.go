// SPDX-License-Identifier: MIT
package generic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynarray/generic"
	"github.com/katalvlaran/dynarray/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge is a small struct payload, standing in for graph edges stored by value.
type edge struct {
	From, To string
}

func mustArray[T comparable](t *testing.T, capacity int) *generic.Array[T] {
	t.Helper()
	a, err := generic.New[T](capacity)
	require.NoError(t, err)

	return a
}

// linearIndex is an independent reference scan over a plain slice.
func linearIndex[T comparable](s []T, v T, fromEnd bool) int {
	if fromEnd {
		for i := len(s) - 1; i >= 0; i-- {
			if s[i] == v {
				return i
			}
		}
		return -1
	}
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}

func TestNewNegativeCapacity(t *testing.T) {
	_, err := generic.New[string](-1)
	require.ErrorIs(t, err, generic.ErrIndexOutOfRange)
}

// TestAppendProperty checks size, capacity and content after N appends.
func TestAppendProperty(t *testing.T) {
	a := mustArray[edge](t, 0)
	want := make([]edge, 0, 300)
	for i := 0; i < 300; i++ {
		e := edge{From: string(rune('a' + i%26)), To: string(rune('A' + i%7))}
		want = append(want, e)
		a.Append(e)
		require.GreaterOrEqual(t, a.Capacity(), a.Size())
	}
	require.Equal(t, 300, a.Size())
	require.Equal(t, want, a.Values())
}

// TestGrowthLaw mirrors the scalar growth sequence for the generic store.
func TestGrowthLaw(t *testing.T) {
	var a generic.Array[int]
	var seen []int
	for i := 0; i < 60; i++ {
		before := a.Capacity()
		a.Append(i)
		if a.Capacity() != before {
			seen = append(seen, a.Capacity())
		}
	}
	require.Equal(t, []int{16, 24, 36, 54, 81}, seen)
}

// TestSetReturnsPrevious verifies Set hands back the replaced value.
func TestSetReturnsPrevious(t *testing.T) {
	a := generic.FromSlice([]string{"x", "y"})
	prev, err := a.Set(1, "z")
	require.NoError(t, err)
	require.Equal(t, "y", prev)

	got, err := a.Get(1)
	require.NoError(t, err)
	require.Equal(t, "z", got)

	_, err = a.Set(2, "w")
	require.ErrorIs(t, err, generic.ErrIndexOutOfRange)
	_, err = a.Get(-1)
	require.ErrorIs(t, err, generic.ErrIndexOutOfRange)
}

// TestSearchAgreesWithLinearScan compares the queries with an independent scan.
func TestSearchAgreesWithLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := mustArray[int](t, 0)
	for i := 0; i < 200; i++ {
		a.Append(rng.Intn(50))
	}
	// Slack past Size must never be searched.
	a.EnsureCapacity(a.Size() + 10)
	a.Data()[a.Size()] = 1000

	ref := append([]int(nil), a.Values()...)
	for v := -1; v <= 1000; v++ {
		require.Equal(t, linearIndex(ref, v, false), a.IndexOf(v), "IndexOf(%d)", v)
		require.Equal(t, linearIndex(ref, v, true), a.LastIndexOf(v), "LastIndexOf(%d)", v)
		require.Equal(t, linearIndex(ref, v, false) >= 0, a.Contains(v), "Contains(%d)", v)
	}
	require.Equal(t, generic.NotFound, a.IndexOf(1000))
}

func TestContainsAll(t *testing.T) {
	a := generic.FromSlice([]string{"a", "b", "c", "a"})
	assert.True(t, a.ContainsAll(nil))
	assert.True(t, a.ContainsAll([]string{"c", "a"}))
	assert.False(t, a.ContainsAll([]string{"a", "d"}))
}

func TestIsEmpty(t *testing.T) {
	a := mustArray[int](t, 4)
	assert.True(t, a.IsEmpty())
	a.Append(1)
	assert.False(t, a.IsEmpty())
	require.NoError(t, a.SetSize(0))
	assert.True(t, a.IsEmpty())
}

// TestSubList verifies bounds and independence of the returned copy.
func TestSubList(t *testing.T) {
	a := generic.FromSlice([]int{10, 20, 30, 40})
	sub, err := a.SubList(1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{20, 30}, sub)

	sub[0] = -1
	v, _ := a.Get(1)
	require.Equal(t, 20, v, "SubList must be an independent copy")

	empty, err := a.SubList(4, 4)
	require.NoError(t, err)
	require.Empty(t, empty)

	for _, r := range [][2]int{{-1, 2}, {0, 5}, {3, 2}} {
		_, err = a.SubList(r[0], r[1])
		require.ErrorIs(t, err, generic.ErrIndexOutOfRange, "SubList(%d,%d)", r[0], r[1])
	}
}

// TestCopyTo checks same-type bulk copy across destination states.
func TestCopyTo(t *testing.T) {
	src := generic.FromSlice([]string{"p", "q", "r"})
	dst := generic.FromSlice([]string{"1", "2", "3", "4", "5"})
	require.NoError(t, src.CopyTo(dst))
	require.Equal(t, []string{"p", "q", "r"}, dst.Values())
	require.Equal(t, 5, dst.Capacity())

	require.ErrorIs(t, src.CopyTo(nil), generic.ErrNilArray)
}

// TestShrinkKeepsStaleReference pins that slots past Size are not cleared until reallocation.
func TestShrinkKeepsStaleReference(t *testing.T) {
	a := mustArray[*edge](t, 2)
	e := &edge{From: "u", To: "v"}
	a.Append(e)
	require.NoError(t, a.SetSize(0))
	require.Same(t, e, a.Data()[0])
}

// TestExportInts verifies integer payloads are copied into a scalar.IntArray.
func TestExportInts(t *testing.T) {
	src := generic.FromSlice([]int32{3, -1, 7})
	dst, err := scalar.NewInt(1)
	require.NoError(t, err)

	require.NoError(t, generic.ExportInts(src, dst))
	require.Equal(t, []int{3, -1, 7}, dst.Values())

	require.ErrorIs(t, generic.ExportInts[int32](nil, dst), generic.ErrNilArray)
	require.ErrorIs(t, generic.ExportInts(src, nil), generic.ErrNilArray)
}

// TestRangeIterators checks All and Backward order and early exit.
func TestRangeIterators(t *testing.T) {
	a := generic.FromSlice([]rune("abcd"))

	var fwd, bwd []rune
	for _, r := range a.All() {
		fwd = append(fwd, r)
	}
	for i, r := range a.Backward() {
		if i == 0 {
			break
		}
		bwd = append(bwd, r)
	}
	require.Equal(t, []rune("abcd"), fwd)
	require.Equal(t, []rune("dcb"), bwd)
}
