/*
Package pcarve is a content aware image shrinking library. It reduces the width
and the height of an image by removing its least important connected paths of
pixels (seams) one at a time, so that the visually important parts are preserved.

The package also provides a command line interface. To check the supported flags type:

	$ pcarve --help

The same tool can be invoked with positional arguments:

	$ pcarve in.ppm out.ppm WIDTH [HEIGHT]

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/pcarve/pcarve"
	)

	func main() {
		p := &pcarve.Processor{
			NewWidth:  200,
			NewHeight: 150,
		}

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			fmt.Printf("Error rescaling image: %s", err.Error())
		}
	}

The carving primitives are exposed as well: ComputeEnergy, ComputeVerticalCost,
FindMinimalVerticalSeam, RemoveVerticalSeam, RotateLeft and RotateRight, which
ShrinkWidth, ShrinkHeight and Shrink chain together.
*/
package pcarve
