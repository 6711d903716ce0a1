package main

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// command is one entry of the command table.
type command struct {
	name    string
	summary string
	run     func(args []string, env *Environment) int
	usage   func(env *Environment)
}

// commands lists the subcommands in help order. Filled in init to break
// the reference cycle with runHelp.
var commands []command

func init() {
	commands = []command{
		{name: "md2pdf", summary: "Assemble Markdown documents into one PDF", run: runBuildCmd, usage: func(env *Environment) { printBuildUsage(env.Stdout) }},
		{name: "doctor", summary: "Check the system for PDF rendering", run: runDoctorCmd, usage: printDoctorUsage},
		{name: "version", summary: "Show version information", run: runVersionCmd, usage: printVersionUsage},
		{name: "help", summary: "Show help for a command", run: runHelpCmd, usage: printHelpUsage},
	}
}

func main() {
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args[1] to its command and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, ok := lookupCommand(args[1])
	if !ok {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}

	return cmd.run(args[2:], env)
}

// lookupCommand finds a command by name.
func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// runVersionCmd prints the version.
func runVersionCmd(_ []string, env *Environment) int {
	fmt.Fprintf(env.Stdout, "docs2pdf %s\n", Version)
	return ExitSuccess
}
