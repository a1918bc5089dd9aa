package rounding_test

import (
	"fmt"

	"github.com/opencivic/tallyengine/rounding"
)

func ExampleCmpRatio() {
	cmp, err := rounding.CmpRatio(1, 3, 1, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(cmp)
	// Output: -1
}

func ExampleGePercentHalfEven() {
	ok, err := rounding.GePercentHalfEven(2, 3, 66)
	if err != nil {
		panic(err)
	}
	fmt.Println(ok)
	// Output: true
}
