package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pygit-cli/pygit/internal/gitcore"
	"github.com/pygit-cli/pygit/internal/termcolor"
)

const defaultLogCount = 10

func runLog(repo *gitcore.Repository, args []string, cw *termcolor.Writer) int {
	maxCount := defaultLogCount

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-n" && i+1 < len(args):
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i])
				return 1
			}
			maxCount = n
		case strings.HasPrefix(args[i], "-n"):
			n, err := strconv.Atoi(args[i][2:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i][2:])
				return 1
			}
			maxCount = n
		default:
			fmt.Fprintf(os.Stderr, "error: unknown option: %q\n", args[i])
			return 1
		}
	}

	commits, err := repo.Log(maxCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 1
	}

	for i, c := range commits {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s %s\n", cw.Yellow("commit"), cw.Yellow(string(c.ID)))
		if len(c.Parents) > 1 {
			parentStrs := make([]string, len(c.Parents))
			for j, p := range c.Parents {
				parentStrs[j] = p.Short()
			}
			fmt.Printf("Merge: %s\n", strings.Join(parentStrs, " "))
		}
		fmt.Printf("Author: %s <%s>\n", c.Author.Name, c.Author.Email)
		fmt.Printf("Date:   %s\n", gitDateFormat(c.Author.When))
		fmt.Println()
		for _, line := range strings.Split(c.Message, "\n") {
			fmt.Printf("    %s\n", line)
		}
	}

	return 0
}
