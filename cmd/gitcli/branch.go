package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pygit-cli/pygit/internal/gitcore"
	"github.com/pygit-cli/pygit/internal/termcolor"
)

func runBranch(repo *gitcore.Repository, args []string, cw *termcolor.Writer) int {
	var name string
	del := false

	for _, a := range args {
		switch {
		case a == "-d" || a == "--delete":
			del = true
		case strings.HasPrefix(a, "-"):
			fmt.Fprintf(os.Stderr, "error: unknown option: %q\n", a)
			return 1
		default:
			name = a
		}
	}

	switch {
	case name == "":
		names, err := repo.BranchList()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 1
		}
		for _, n := range names {
			if strings.HasPrefix(n, "* ") {
				fmt.Printf("* %s\n", cw.Green(strings.TrimPrefix(n, "* ")))
			} else {
				fmt.Println(n)
			}
		}
		return 0

	case del:
		if err := repo.BranchDelete(name); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 1
		}
		return 0

	default:
		if err := repo.BranchCreate(name); err != nil {
			if errors.Is(err, gitcore.ErrUnbornBranch) {
				fmt.Fprintln(os.Stderr, "fatal: not a valid object name: no commits yet")
			} else {
				fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			}
			return 1
		}
		return 0
	}
}
