package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pygit-cli/pygit/internal/gitcore"
)

const defaultAuthor = "PyGit user <user@pygit.com>"

func runCommit(repo *gitcore.Repository, args []string) int {
	var message, author string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-m", "--message":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "error: -m requires a message")
				return 1
			}
			i++
			message = args[i]
		case "--author":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --author requires a value")
				return 1
			}
			i++
			author = args[i]
		default:
			fmt.Fprintf(os.Stderr, "error: unknown option: %q\n", args[i])
			return 1
		}
	}

	if message == "" {
		fmt.Fprintln(os.Stderr, "fatal: commit message required")
		return 1
	}
	if author == "" {
		author = resolveAuthor()
	}

	id, noop, err := repo.Commit(message, author, time.Now())
	if err != nil {
		if errors.Is(err, gitcore.ErrMessageRequired) {
			fmt.Fprintln(os.Stderr, "fatal: commit message required")
		} else {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		}
		return 1
	}
	if noop {
		fmt.Println("nothing to commit")
		return 0
	}

	fmt.Printf("[%s] %s\n", id.Short(), firstLine(message))
	return 0
}

// resolveAuthor returns the PYGIT_AUTHOR environment override, or the
// spec-mandated default identity when unset.
func resolveAuthor() string {
	if a := os.Getenv("PYGIT_AUTHOR"); a != "" {
		return a
	}
	return defaultAuthor
}
