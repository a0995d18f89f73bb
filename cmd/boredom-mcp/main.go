package main

import (
	"fmt"
	"os"

	"github.com/standardbeagle/boredom-mcp/internal/facts"
)

const version = "0.4.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	facts.UserAgent = "boredom-mcp/" + version

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "simple":
		cmdSimple(os.Args[2:])
	case "config":
		if len(os.Args) < 3 {
			printConfigUsage()
			return
		}
		switch os.Args[2] {
		case "paths":
			cmdConfigPaths(os.Args[3:])
		case "dump":
			cmdConfigDump(os.Args[3:])
		case "help", "-h", "--help":
			printConfigUsage()
		default:
			printConfigUsage()
			os.Exit(1)
		}
	case "version", "-v", "--version":
		fmt.Printf("boredom-mcp version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`boredom-mcp - MCP server that kills boredom

Usage:
  boredom-mcp <command> [options]

Commands:
  serve          Start the Boredom Killer MCP server
  simple         Start the Simple Boredom Test server
  config paths   Show config file paths
  config dump    Show the merged configuration
  version        Show version
  help           Show this help

Run 'boredom-mcp <command> --help' for more information on a command.
`)
}

func printConfigUsage() {
	fmt.Print(`boredom-mcp config - Inspect configuration

Usage:
  boredom-mcp config <subcommand>

Subcommands:
  paths    Show config file paths and whether they exist
  dump     Print the merged user and project config as KDL

Config file precedence (later overrides earlier):
  1. User config (~/.config/boredom-mcp/config.kdl)
  2. Project config (.boredom-mcp.kdl)

Example:
  timeout "5s"
  provider "trivia" {
      url "http://numbersapi.com/random/math"
      timeout "2s"
  }
`)
}
