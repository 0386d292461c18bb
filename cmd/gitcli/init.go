package main

import (
	"fmt"

	"github.com/pygit-cli/pygit/internal/gitcore"
)

func runInit() int {
	created, err := gitcore.Init(".")
	if err != nil {
		fmt.Printf("fatal: %v\n", err)
		return 1
	}
	if !created {
		fmt.Println("pygit repository already exists")
		return 0
	}
	fmt.Println("Initialized empty pygit repository")
	return 0
}
