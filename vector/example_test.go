package vector_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-vecadd/vector"
)

func ExampleAdd() {
	sum, err := vector.Add([]float64{1, 2, 3}, []float64{10, 20, 30})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(sum)
	// Output: [11 22 33]
}

func ExampleAdder_Add() {
	adder, err := vector.NewAdder(vector.WithWorkers(2), vector.WithMinChunk(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	sum, err := adder.Add(context.Background(), []float64{-1.5, 0}, []float64{1.5, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(sum)
	// Output: [0 0]
}
