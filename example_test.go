// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray_test

import (
	"fmt"
	"log"

	"github.com/nlpodyssey/densearray"
	"github.com/nlpodyssey/densearray/shape"
)

func ExampleNew() {
	data := []float32{0, 1, 2, 3, 4, 5}

	a, err := densearray.New(data, shape.Shape{2, 3})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("shape = %v\n", a.Shape())
	fmt.Printf("rank = %d\n", a.Rank())
	fmt.Printf("len = %d\n", a.Len())
	fmt.Printf("element at [1 2] = %v\n", a.At([]int{1, 2}))

	// Output:
	// shape = [2 3]
	// rank = 2
	// len = 6
	// element at [1 2] = 5
}

func ExampleArray_Extract() {
	data := make([]int, 20)
	for i := range data {
		data[i] = i
	}

	a, err := densearray.New(data, shape.Shape{5, 4})
	if err != nil {
		log.Fatal(err)
	}

	sub, err := a.Extract([]int{0, 1}, 1, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("shape = %v\n", sub.Shape())
	fmt.Printf("data = %v\n", sub.Raw())

	// Output:
	// shape = [5 2]
	// data = [5 6 7 8 9 10 11 12 13 14]
}

func ExampleArray_Expand() {
	a, err := densearray.NewFilled(shape.Shape{2, 2}, 1)
	if err != nil {
		log.Fatal(err)
	}

	if err := a.Expand(0, 0, 1, 1); err != nil {
		log.Fatal(err)
	}

	rendered, err := a.Sprint()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rendered)

	// Output:
	// [[1 0 1]
	//  [1 0 1]]
}
