// SPDX-License-Identifier: MIT

// Command unmatrix decomposes the 4×4 transforms listed in a YAML or JSON
// document and prints their translation, scale, skew, perspective and
// rotation.
//
//	unmatrix -in transforms.yaml
//	unmatrix -in transforms.json.zst -format json -strict
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgraubner/expo/decompose"
	"github.com/lgraubner/expo/internal/input"
	"github.com/lgraubner/expo/internal/report"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitStrict  = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "unmatrix: ", 0)

	fs := flag.NewFlagSet("unmatrix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "-", "transform document (YAML or JSON); - reads stdin")
	format := fs.String("format", "yaml", "output format: yaml or json")
	compression := fs.String("compression", "auto", "input compression: auto, none, gzip or zstd")
	singlePass := fs.Bool("single-pass", false, "orthogonalize the XY shear once (keeps skew xy)")
	validateOnly := fs.Bool("validate", false, "only validate the document")
	strict := fs.Bool("strict", false, "exit non-zero when any transform is not decomposable")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	outFormat, err := report.ParseFormat(*format)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	comp, err := input.ParseCompression(*compression)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	doc, err := input.Load(*inPath, comp)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	if *validateOnly {
		fmt.Fprintf(stdout, "%s: %d transforms ok\n", *inPath, len(doc.Transforms))
		return exitOK
	}

	opts := []decompose.Option{decompose.WithDuplicateOrthogonalization(!*singlePass)}
	rep := report.Report{Results: make([]report.Entry, 0, len(doc.Transforms))}
	for _, tr := range doc.Transforms {
		m, err := tr.Build()
		if err != nil {
			logger.Print(err)
			return exitFailure
		}
		res, err := decompose.Decompose(m, opts...)
		entry := report.NewEntry(tr.Name, res, err)
		if entry.Error != "" {
			logger.Printf("%s: %s", tr.Name, entry.Error)
		}
		rep.Results = append(rep.Results, entry)
	}

	if err = report.Write(stdout, rep, outFormat); err != nil {
		logger.Print(err)
		return exitFailure
	}
	if *strict && rep.Failed() > 0 {
		return exitStrict
	}

	return exitOK
}
