// Package main is an interactive demo of reflow's adaptive header.
//
// Usage:
//
//	reflow-demo run [options]        Run the interactive demo
//	reflow-demo render [options]     Render one header and print it
//	reflow-demo list                 List widget kinds and sample content
//	reflow-demo help                 Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `reflow-demo - adaptive header demo

Usage:
  reflow-demo <command> [options]

Commands:
  run         Run the interactive demo
  render      Render one header at a fixed width and print it
  list        List registered widget kinds and sample content
  version     Print version information
  help        Show this help message

Options (run, render):
  --sample N        Start with sample N (see list)
  --size NAME       Content size category, e.g. large, accessibility-large
  --vertical        Prefer the vertical arrangement
  --no-reflow       Never reflow to vertical
  --log FILE        Write debug log to FILE (same as REFLOW_DEBUG)

Options (render):
  --width N         Render width in cells (default 40)

Keys (run):
  o   toggle preferred orientation     +/-  change text size
  n   next sample                      r    toggle reflow
  q   quit
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := runRender(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := runList(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("reflow-demo version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
