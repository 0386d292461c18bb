package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pygit-cli/pygit/internal/gitcore"
)

func runCheckout(repo *gitcore.Repository, args []string) int {
	create := false
	var target string

	for _, a := range args {
		switch {
		case a == "-b":
			create = true
		default:
			target = a
		}
	}

	if target == "" {
		fmt.Fprintln(os.Stderr, "error: branch name required")
		return 1
	}

	if err := repo.Checkout(target, create); err != nil {
		switch {
		case errors.Is(err, gitcore.ErrBranchNotFound):
			fmt.Fprintf(os.Stderr, "error: branch not found: %s\n", target)
		case errors.Is(err, gitcore.ErrUnbornBranch):
			fmt.Fprintln(os.Stderr, "fatal: no commits yet")
		default:
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		}
		return 1
	}

	if create {
		fmt.Printf("Switched to a new branch '%s'\n", target)
	} else {
		fmt.Printf("Switched to branch '%s'\n", target)
	}
	return 0
}
