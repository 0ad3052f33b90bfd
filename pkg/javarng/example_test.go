package javarng_test

import (
	"fmt"

	"github.com/dshills/mcseed/pkg/javarng"
)

func ExampleRNG_NextIntN() {
	r := javarng.NewFromSeed(12345)
	fmt.Println(r.NextIntN(10))
	// Output: 1
}

func ExampleRNG_NextLong() {
	r := javarng.NewFromSeed(12345)
	fmt.Println(r.NextLong())
	// Output: 6674089274190705457
}
