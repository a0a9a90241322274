// Command ferryc compiles ferry schema files into Go codecs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Command is one ferryc subcommand.
type Command interface {
	Name() string
	DefineFlags(fs *flag.FlagSet)
	Execute(args []string) error
}

// CommandRegistry holds all available commands
type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(stdout, stderr io.Writer) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register(&GenerateCmd{stdout: stdout, stderr: stderr})
	registry.Register(&CheckCmd{stdout: stdout, stderr: stderr})
	registry.Register(&SchemaCmd{stdout: stdout})

	return registry
}

func (r *CommandRegistry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *CommandRegistry) Get(name string) (Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

func (r *CommandRegistry) ListCommands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *CommandRegistry) ExecuteCommand(cmdName string, args []string, stderr io.Writer) error {
	cmd, exists := r.Get(cmdName)
	if !exists {
		return errors.Newf("unknown command %q (want one of %s)", cmdName, strings.Join(r.ListCommands(), ", "))
	}

	fs := flag.NewFlagSet("ferryc "+cmdName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cmd.DefineFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ferryc %s [flags] files...\n", cmdName)
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.Execute(fs.Args())
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	registry := NewCommandRegistry(stdout, stderr)

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printGlobalHelp(stderr)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	err := registry.ExecuteCommand(args[0], args[1:], stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	}
	fmt.Fprintf(stderr, "ferryc: %v\n", err)
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printGlobalHelp(w io.Writer) {
	fmt.Fprint(w, `ferryc - ferry schema compiler

Usage:
  ferryc <command> [flags] files...

Commands:
  generate    compile schemas into Go encode/decode routines
  check       parse and validate schemas without writing anything
  schema      print the parsed record layouts

Examples:
  ferryc generate -pkg records -o records_ferry.go records.fsch
  ferryc generate -config ferry.yaml
  ferryc check *.fsch

Use 'ferryc <command> -h' for command-specific help.
`)
}
