package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pygit-cli/pygit/internal/gitcore"
	"github.com/pygit-cli/pygit/internal/termcolor"
)

func runStatus(repo *gitcore.Repository, cw *termcolor.Writer) int {
	branch, err := gitcore.CurrentBranch(repo.GitDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 1
	}
	fmt.Printf("On branch %s\n", branch)

	report, err := repo.Status()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 1
	}

	sort.Strings(report.ToBeCommitted)
	sort.Strings(report.NotStaged)
	sort.Strings(report.Untracked)
	sort.Strings(report.Deleted)

	if len(report.ToBeCommitted) > 0 {
		fmt.Println(cw.Green("Changes to be committed:"))
		for _, p := range report.ToBeCommitted {
			fmt.Printf("\t%s\n", cw.Green(p))
		}
		fmt.Println()
	}

	if len(report.NotStaged) > 0 {
		fmt.Println(cw.Red("Changes not staged for commit:"))
		for _, p := range report.NotStaged {
			fmt.Printf("\t%s\n", cw.Red(p))
		}
		fmt.Println()
	}

	if len(report.Deleted) > 0 {
		fmt.Println(cw.Red("Deleted:"))
		for _, p := range report.Deleted {
			fmt.Printf("\t%s\n", cw.Red(p))
		}
		fmt.Println()
	}

	if len(report.Untracked) > 0 {
		fmt.Println("Untracked files:")
		for _, p := range report.Untracked {
			fmt.Printf("\t%s\n", cw.Red(p))
		}
		fmt.Println()
	}

	if len(report.ToBeCommitted) == 0 && len(report.NotStaged) == 0 &&
		len(report.Untracked) == 0 && len(report.Deleted) == 0 {
		fmt.Println("nothing to commit, working tree clean")
	}

	return 0
}
