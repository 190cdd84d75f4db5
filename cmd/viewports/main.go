// cmd/viewports/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"viewports/internal/elemkind"
	"viewports/internal/hosterr"
	"viewports/internal/indexvec"
	"viewports/internal/trace"
	"viewports/internal/vecsource"
	"viewports/internal/viewport"
)

// main is deliberately thin: the engine (internal/viewport) is the part of
// this repository worth reading. This entrypoint exists to flip the debug
// toggle on and demonstrate constructing and inspecting each view kind.
func main() {
	debug := flag.Bool("debug", false, "enable verbose trace emission")
	flag.Parse()

	trace.SetDebugMode(*debug)

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "viewports:", err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if herr, ok := r.(*hosterr.Error); ok {
				err = herr
				return
			}
			panic(r)
		}
	}()

	source := vecsource.NewInt32Vector([]int32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})

	slice := viewport.NewSlice(source, 1, 6)
	fmt.Println(slice.Inspect())

	mosaic := viewport.NewMosaic(source, viewport.Selector{Indices: indexvec.FromInt32([]int32{2, 4, 6})})
	fmt.Println(mosaic.Inspect())

	prism := viewport.NewPrism(source, indexvec.FromInt32([]int32{4, 1, elemkind.NAInt32, 2}))
	fmt.Println(prism.Inspect())

	gathered, refined := slice.ExtractSubset(indexvec.FromInt32([]int32{2, 4, 6}))
	if refined != nil {
		fmt.Println("slice.subset([2,4,6]) ->", refined.Inspect())
	} else {
		fmt.Println("slice.subset([2,4,6]) materialized ->", gathered.Inspect())
	}

	return nil
}
