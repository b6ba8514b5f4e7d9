// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/synthdata/matrix"
)

// ExampleCholesky factors a 2×2 correlation matrix with coefficient 0.6.
func ExampleCholesky() {
	c, _ := matrix.Identity(2)
	_ = c.Set(0, 1, 0.6)
	_ = c.Set(1, 0, 0.6)

	L, err := matrix.Cholesky(c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(L)
	// Output:
	// [1, 0]
	// [0.6, 0.8]
}
