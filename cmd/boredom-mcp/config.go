package main

import (
	"fmt"
	"os"

	"github.com/standardbeagle/boredom-mcp/internal/config"
)

func cmdConfigPaths(args []string) {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			printConfigUsage()
			return
		}
	}

	cwd, _ := os.Getwd()
	paths := config.ConfigPaths(cwd)

	fmt.Println("Config file paths:")
	for _, name := range []string{"user", "project"} {
		status := "not found"
		if _, err := os.Stat(paths[name]); err == nil {
			status = "exists"
		}
		fmt.Printf("  %-8s %s (%s)\n", name+":", paths[name], status)
	}
}

func cmdConfigDump(args []string) {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			printConfigUsage()
			return
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out := config.Format(cfg)
	if out == "" {
		fmt.Println("# no overrides; built-in defaults apply")
		return
	}
	fmt.Print(out)
}
