// Package cmd implements the ailiscene CLI commands.
//
// The command structure follows a root command that dispatches to
// subcommands (dump, lint) via a small hand-rolled registry: no
// third-party command framework.
package cmd

import (
	"fmt"
	"os"
)

// Version is set at build time.
var Version = "0.1.0-dev"

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "ailiscene",
	Short: "Inspect and validate Aili visualization-tree scenario files",
	Long: `ailiscene is a small collaborator tool around the Aili
visualization-tree core: it loads a YAML scenario file describing
elements, parents, pins and connectors, and either dumps the resolved
tree and connector projections or lints the file's tag names.

Use "ailiscene <command> --help" for more information about a command.`,
	Usage: "ailiscene <command> [flags]",
}

var commands = make(map[string]*Command)
var order []string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	order = append(order, cmd.Name)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version", "version":
		fmt.Printf("ailiscene version %s\n", Version)
		return nil
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := args[1:]
	for _, a := range cmdArgs {
		if a == "-h" || a == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, name := range order {
		cmd := commands[name]
		fmt.Printf("  %-10s %s\n", cmd.Name, cmd.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help       Show help for a command")
	fmt.Println("  -v, --version    Show version information")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
