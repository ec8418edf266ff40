package cplx_test

import (
	"fmt"

	"github.com/katalvlaran/cmplx/cplx"
)

func ExampleParse() {
	z, err := cplx.Parse("2+3i")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(z.Re, z.Im, z.Conjugate())

	_, err = cplx.Parse("garbage")
	fmt.Println(err)
	// Output:
	// 2 3 2-3i
	// Parse("garbage"): invalid real part "garbage": cplx: malformed complex number
}

func ExampleVector_InnerProduct() {
	v := cplx.NewVector(cplx.New(1, 2), cplx.New(3, 4))
	w := cplx.NewVector(cplx.New(5, 6), cplx.New(7, 8))

	ip, _ := v.InnerProduct(w)
	fmt.Println(ip)
	fmt.Println(cplx.NewVector(cplx.New(3, 4)).Norm())
	// Output:
	// 70+8i
	// 5
}
