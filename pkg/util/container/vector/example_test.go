// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector_test

import (
	"fmt"

	"github.com/cockroachdb/containers/pkg/util/container/vector"
)

func Example() {
	var v vector.Vector[int]
	for i := 1; i <= 5; i++ {
		v.PushBack(i)
		fmt.Println(v.String())
	}
	if err := v.Insert(2, 6); err != nil {
		panic(err)
	}
	fmt.Println(v.Data())

	if err := v.Erase(6); err != nil {
		fmt.Println(err)
	}

	// Output:
	// vector{len: 1, cap: 1}
	// vector{len: 2, cap: 2}
	// vector{len: 3, cap: 4}
	// vector{len: 4, cap: 4}
	// vector{len: 5, cap: 8}
	// [1 2 6 3 4 5]
	// erase: position 6 not in [0, 6): out of range
}

func ExampleVector_Reserve() {
	var v vector.Vector[string]
	v.Reserve(5)
	v.Reserve(2)
	fmt.Println(v.Len(), v.Cap())
	v.PushBack("a")
	v.ShrinkToFit()
	fmt.Println(v.Len(), v.Cap())

	// Output:
	// 0 5
	// 1 1
}
