package main

import (
	"fmt"
	"os"

	"github.com/pygit-cli/pygit/internal/gitcore"
)

func runAdd(repo *gitcore.Repository, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: nothing specified, nothing added")
		return 1
	}

	for _, path := range args {
		if err := repo.Add(path); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 1
		}
	}
	return 0
}
