// seebinum shows numbers in binary across integer, floating-point and
// fixed-point encodings.
//
// Usage:
//
//	seebinum 3.14159                     List every encoding of one number
//	seebinum float16 raw 0x4240          Read raw bits as a float16
//	seebinum uint32 mul 3 2 dot 1 2 3 4  Perform operations in uint32
//	seebinum --format json int8 -13      Emit JSON
package main

import (
	"os"

	"github.com/roach88/seebinum/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand(), os.Args[1:]))
}
