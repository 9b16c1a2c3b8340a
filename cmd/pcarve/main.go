package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/pcarve/pcarve"
	"github.com/pcarve/pcarve/utils"
)

const helpBanner = `
┌─┐┌─┐┌─┐┬─┐┬  ┬┌─┐
├─┘│  ├─┤├┬┘└┐┌┘├┤
┴  └─┘┴ ┴┴└─ └┘ └─┘

Content aware image shrinking.
    Version: %s

Usage:
    pcarve [flags]
    pcarve IN_FILENAME OUT_FILENAME WIDTH [HEIGHT]

`

const positionalUsage = "Usage: pcarve IN_FILENAME OUT_FILENAME WIDTH [HEIGHT]\n" +
	"WIDTH and HEIGHT must be less than or equal to the original\n"

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Exit codes of the positional form.
const (
	exitUsage = iota + 1
	exitInput
	exitOutput
	exitDimensions
)

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source")
	destination = flag.String("out", pipeName, "Destination")
	newWidth    = flag.Int("width", 0, "New width")
	newHeight   = flag.Int("height", 0, "New height")
	scale       = flag.Bool("scale", false, "Proportional scaling before carving")
	faceDetect  = flag.Bool("face", false, "Use face detection")
	faceAngle   = flag.Float64("angle", 0.0, "Plane rotated faces angle")
	cascade     = flag.String("cc", "", "Cascade classifier")
	debug       = flag.Bool("debug", false, "Log every removed seam")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		os.Exit(runPositional(flag.Args()))
	}

	if *newWidth == 0 && *newHeight == 0 {
		flag.Usage()
		log.Fatalf("%s%s",
			utils.DecorateText("\nPlease provide a width or a height for image rescaling!", utils.ErrorMessage),
			utils.DefaultColor,
		)
	}
	if *faceDetect && len(*cascade) == 0 {
		log.Fatal(utils.DecorateText("Please specify a face classifier in case you are using the -face flag!\n", utils.ErrorMessage))
	}

	proc := &pcarve.Processor{
		NewWidth:   *newWidth,
		NewHeight:  *newHeight,
		Scale:      *scale,
		FaceDetect: *faceDetect,
		FaceAngle:  *faceAngle,
		Classifier: *cascade,
		Debug:      *debug,
	}
	op := &pcarve.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}
	if err := proc.Execute(op); err != nil {
		log.Fatalf("%s%s",
			utils.DecorateText(fmt.Sprintf("\nError resizing the image: %v", err), utils.ErrorMessage),
			utils.DefaultColor,
		)
	}
}

// runPositional implements the `pcarve IN OUT WIDTH [HEIGHT]` form and returns the exit code.
func runPositional(args []string) int {
	if len(args) < 3 || len(args) > 4 {
		fmt.Print(positionalUsage)
		return exitUsage
	}

	in, err := os.Open(args[0])
	if err != nil {
		fmt.Printf("Error opening file: %s\n", args[0])
		return exitInput
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		fmt.Printf("Error opening file: %s\n", args[1])
		return exitOutput
	}
	defer out.Close()

	img, format, err := pcarve.Decode(in)
	if err != nil {
		fmt.Printf("Error reading file: %s: %v\n", args[0], err)
		return exitInput
	}

	width, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Print(positionalUsage)
		return exitUsage
	}
	height := -1
	if len(args) == 4 {
		if height, err = strconv.Atoi(args[3]); err != nil {
			fmt.Print(positionalUsage)
			return exitUsage
		}
	}

	validWidth := width > 0 && width <= img.Width()
	validHeight := height == -1 || (height > 0 && height <= img.Height())
	if !validWidth || !validHeight {
		fmt.Print(positionalUsage)
		return exitDimensions
	}

	if height == -1 {
		img = pcarve.ShrinkWidth(img, width)
	} else {
		img = pcarve.Shrink(img, width, height)
	}

	if err := pcarve.Encode(out, img, format); err != nil {
		fmt.Printf("Error writing file: %s: %v\n", args[1], err)
		return exitOutput
	}
	return 0
}
