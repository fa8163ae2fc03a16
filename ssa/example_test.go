package ssa_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/stochkin/network"
	"github.com/katalvlaran/stochkin/ssa"
)

// ExampleDirect drains A -> ∅ from five molecules: every event removes one.
func ExampleDirect() {
	net, err := network.New([][]int{{1}}, [][]int{{0}}, []float64{1})
	if err != nil {
		panic(err)
	}
	opts := ssa.DefaultOptions()
	opts.MaxT = math.Inf(1)

	res, err := ssa.Direct(context.Background(), net, []int64{5}, opts)
	if err != nil {
		panic(err)
	}
	_, x := res.Final()
	fmt.Println(res.Status, res.Len(), x)
	// Output: extinct 6 [0]
}

// ExampleTauAdaptive shows that critical reactions fire one at a time.
func ExampleTauAdaptive() {
	net, err := network.New([][]int{{1}}, [][]int{{0}}, []float64{1})
	if err != nil {
		panic(err)
	}
	opts := ssa.DefaultTauOptions()
	opts.MaxT = math.Inf(1)

	res, err := ssa.TauAdaptive(context.Background(), net, []int64{5}, opts)
	if err != nil {
		panic(err)
	}
	_, x := res.Final()
	fmt.Println(res.Status, res.Len(), x)
	// Output: extinct 6 [0]
}
