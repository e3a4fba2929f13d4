// SPDX-License-Identifier: MIT

// validate checks a devenv descriptor file.
//
// Usage:
//
//	validate -f devenv.yaml
//	validate --file devenv.yaml
//
// Exit codes:
//   - 0: Descriptor is valid
//   - 1: Descriptor is invalid (parse or validation error)
//   - 2: Usage error (missing required flag)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/motif-audio/motif/internal/devenv"
	"github.com/motif-audio/motif/internal/version"
)

func main() {
	var file string
	var showVersion bool
	var showPlan bool

	flag.StringVar(&file, "file", "", "path to devenv descriptor file")
	flag.StringVar(&file, "f", "", "path to devenv descriptor file (shorthand)")
	flag.BoolVar(&showPlan, "plan", false, "print the resolved hook plan after validating")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.Version)
		os.Exit(0)
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  validate -f devenv.yaml")
		fmt.Fprintln(os.Stderr, "  validate --file devenv.yaml")
		os.Exit(2)
	}

	// Load uses strict YAML parsing; unknown fields are errors.
	desc, err := devenv.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Descriptor error in %s:\n", file)
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}

	if err := devenv.Validate(desc); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error in %s:\n", file)
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ %s is valid\n", file)

	if showPlan {
		plan := devenv.Resolve(desc)
		fmt.Printf("dotenv: %v\n", plan.DotenvEnabled)
		fmt.Printf("packages: %d\n", len(plan.Packages))
		for _, stage := range devenv.KnownStages {
			hooks := plan.RegisteredAt(stage)
			if len(hooks) == 0 {
				continue
			}
			fmt.Printf("%s:\n", stage)
			for _, h := range hooks {
				fmt.Printf("  %s: %s\n", h.Name, h.Entry)
			}
		}
	}
}
