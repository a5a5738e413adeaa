// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softrt_test

import (
	"fmt"

	"github.com/avdva/softrt"
)

func ExampleSelect() {
	r, err := softrt.Select(softrt.OpMod, softrt.Int64)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	fmt.Println(int64(r.Eval(uint64(1<<64-7), 3)))
	_, err = softrt.Select(softrt.OpShl, softrt.Uint32)
	fmt.Println(err)
	// Output:
	// _modslonglong (mod int64)
	// -1
	// shl uint32: operation is native to the target
}
