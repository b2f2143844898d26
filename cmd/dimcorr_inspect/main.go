// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// dimcorr_inspect prints how the dimensions of one shape correspond to the
// dimensions of another shape with the same element count.
//
// Example:
//
//	$ dimcorr_inspect -from 2x32 -to 4x4x4 -marked 1
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/gomlx/reshapes/dimcorr"
	"github.com/gomlx/reshapes/errutil"
	"github.com/gomlx/reshapes/types"
	"github.com/gomlx/reshapes/types/xslices"
)

var (
	flagFrom   = flag.String("from", "", "Source shape dimensions, e.g. \"2x32\". Required.")
	flagTo     = flag.String("to", "", "Target shape dimensions, e.g. \"4x4x4\". Must have the same element count as -from. Required.")
	flagMarked = flag.String("marked", "", "Comma-separated axes of -from to convert, e.g. \"0,1\". Optional.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagFrom == "" || *flagTo == "" {
		klog.Errorf("Both -from and -to are required. See 'dimcorr_inspect -help'.")
		os.Exit(1)
	}

	run()
}

func run() {
	fromSizes := parseDimsMust(*flagFrom)
	toSizes := parseDimsMust(*flagTo)
	if err := validateSizes(fromSizes, toSizes); err != nil {
		klog.Exitf("%v", err)
	}

	fmt.Printf("from: %v (%s elements)\n", fromSizes, humanize.Comma(xslices.Product(fromSizes)))
	fmt.Printf("to:   %v (%s elements)\n", toSizes, humanize.Comma(xslices.Product(toSizes)))

	bounds := dimcorr.FindCommonFactors(fromSizes, toSizes)
	fmt.Println("\ncommon-factor boundaries:")
	for _, bound := range bounds {
		fmt.Printf("  (%d, %d)\n", bound.A, bound.B)
	}

	if *flagMarked == "" {
		return
	}
	marked := types.MakeSet[int64]()
	for _, part := range strings.Split(*flagMarked, ",") {
		axis, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			klog.Exitf("%v", errutil.Prepend(err, "parsing -marked %q", *flagMarked))
		}
		if axis < 0 || axis >= int64(len(fromSizes)) {
			klog.Exitf("-marked axis %d out of range for -from of rank %d", axis, len(fromSizes))
		}
		marked.Insert(axis)
	}

	converted := dimcorr.ConvertDimensionNumbers(marked, fromSizes, toSizes)
	fmt.Println("\nconverted dimension numbers:")
	fmt.Printf("  to_dimensions:                %v\n", converted.ToDimensions)
	fmt.Printf("  transformed_from_dimensions:  %v\n", converted.TransformedFromDimensions)
	fmt.Printf("  untransformed_from_dimensions: %v\n", converted.UntransformedFromDimensions)
	fmt.Printf("  split_from_dimensions:        %v\n", converted.SplitFromDimensions)
	fmt.Printf("  split_from_sizes:             %v\n", converted.SplitFromSizes)
}

// parseDims parses a shape spec like "2x3x4" ("" means a scalar).
func parseDims(spec string) ([]int64, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.Split(spec, "x")
	dims := make([]int64, 0, len(parts))
	for _, part := range parts {
		dim, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errutil.Prepend(err, "parsing shape spec %q", spec)
		}
		if dim < 0 {
			return nil, fmt.Errorf("parsing shape spec %q: negative dimension %d", spec, dim)
		}
		dims = append(dims, dim)
	}
	return dims, nil
}

func parseDimsMust(spec string) []int64 {
	dims, err := parseDims(spec)
	if err != nil {
		klog.Exitf("%v", err)
	}
	return dims
}

func validateSizes(fromSizes, toSizes []int64) error {
	fromSize, toSize := xslices.Product(fromSizes), xslices.Product(toSizes)
	if fromSize != toSize {
		return fmt.Errorf("-from has %s elements but -to has %s, they must match",
			humanize.Comma(fromSize), humanize.Comma(toSize))
	}
	return nil
}
