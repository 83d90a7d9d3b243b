package invcache_test

import (
	"fmt"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCachedMatrix_SolveInverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Wrap m = [[2,0],[0,2]] in a container, solve twice, replace the value,
//	solve again. Exactly one inversion runs per matrix generation; the
//	second call for a generation is served from the cache.
//
// Use case:
//
//	Repeatedly applying M⁻¹ (solving many right-hand sides, iterative
//	refinement) without paying the O(n³) inversion on every access.
func ExampleCachedMatrix_SolveInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	cm := invcache.New(m)

	inv, _ := cm.SolveInverse() // computes
	fmt.Print(inv)

	again, _ := cm.SolveInverse() // cached: same stored matrix
	fmt.Println(inv == again)

	id, _ := matrix.Identity(2)
	cm.SetValue(id) // invalidates; next solve recomputes

	inv, _ = cm.SolveInverse()
	fmt.Print(inv)
	// Output:
	// [0.5, 0]
	// [0, 0.5]
	// true
	// [1, 0]
	// [0, 1]
}

// ExampleCachedMatrix_Inverse shows the comma-ok accessor before and after
// the first solve.
func ExampleCachedMatrix_Inverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	cm := invcache.New(m)

	_, ok := cm.Inverse()
	fmt.Println("cached before solve:", ok)

	_, _ = cm.SolveInverse()

	_, ok = cm.Inverse()
	fmt.Println("cached after solve:", ok)
	// Output:
	// cached before solve: false
	// cached after solve: true
}
