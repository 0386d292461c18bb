package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pygit-cli/pygit/internal/cli"
	"github.com/pygit-cli/pygit/internal/gitcore"
	"github.com/pygit-cli/pygit/internal/termcolor"
)

// Build-time variables set via -ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	gf, args := parseGlobalFlags(os.Args[1:])

	// --version is handled before app.Run because "--" prefixed args
	// would be treated as unknown commands by the dispatcher.
	for _, a := range args {
		if a == "--version" {
			printVersion()
			os.Exit(0)
		}
	}

	cw := termcolor.NewWriter(os.Stdout, gf.colorMode)

	app := cli.NewApp("pygit", version)
	app.Stderr = os.Stderr

	// repo is declared here and assigned after dispatch determines that
	// the matched command needs it (NeedsRepo). Closures capture the
	// pointer variable, which is populated before they execute.
	var repo *gitcore.Repository

	app.Register(&cli.Command{
		Name:    "init",
		Summary: "Create an empty repository",
		Usage:   "pygit init",
		Run:     func([]string) int { return runInit() },
	})

	app.Register(&cli.Command{
		Name:      "add",
		Summary:   "Stage a file or directory",
		Usage:     "pygit add <path>...",
		Examples:  []string{"pygit add hello.txt", "pygit add src"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runAdd(repo, args) },
	})

	app.Register(&cli.Command{
		Name:      "commit",
		Summary:   "Record staged changes",
		Usage:     "pygit commit -m <message> [--author <name-and-email>]",
		Examples:  []string{`pygit commit -m "initial commit"`},
		NeedsRepo: true,
		Run:       func(args []string) int { return runCommit(repo, args) },
	})

	app.Register(&cli.Command{
		Name:      "checkout",
		Summary:   "Switch branches and restore the working tree",
		Usage:     "pygit checkout [-b] <branch>",
		Examples:  []string{"pygit checkout main", "pygit checkout -b feature"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runCheckout(repo, args) },
	})

	app.Register(&cli.Command{
		Name:      "branch",
		Summary:   "List, create, or delete branches",
		Usage:     "pygit branch [<name>] [-d]",
		Examples:  []string{"pygit branch", "pygit branch feature", "pygit branch -d feature"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runBranch(repo, args, cw) },
	})

	app.Register(&cli.Command{
		Name:      "log",
		Summary:   "Show commit log",
		Usage:     "pygit log [-n <count>]",
		Examples:  []string{"pygit log", "pygit log -n 5"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runLog(repo, args, cw) },
	})

	app.Register(&cli.Command{
		Name:      "status",
		Summary:   "Show working tree status",
		Usage:     "pygit status",
		NeedsRepo: true,
		Run:       func(args []string) int { return runStatus(repo, cw) },
	})

	app.Register(&cli.Command{
		Name:    "version",
		Summary: "Show version information",
		Usage:   "pygit version",
		Run:     func([]string) int { printVersion(); return 0 },
	})

	// Determine which command will run so we can load the repo only when needed.
	if len(args) > 0 {
		cmd := app.Lookup(args[0])
		if cmd != nil && cmd.NeedsRepo {
			var err error
			repo, err = gitcore.Open(".")
			if err != nil {
				fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
				os.Exit(1)
			}
		}
	}

	os.Exit(app.Run(args, cw))
}

func printVersion() {
	fmt.Printf("pygit %s\n", version)
	fmt.Printf("  commit:     %s\n", commit)
	fmt.Printf("  built:      %s\n", buildDate)
	fmt.Printf("  go version: %s\n", runtime.Version())
	fmt.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
