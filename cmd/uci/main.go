package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kestrelchess/kestrel/internal/bitboards"
	. "github.com/kestrelchess/kestrel/internal/helpers"
	"github.com/kestrelchess/kestrel/internal/uci"
	"github.com/pkg/profile"
)

func main() {
	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}

	runner, err := uci.NewRunner(bitboards.NewAttackTables())
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := scanner.Text()

		result, err := runner.HandleInput(input)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		for _, line := range result {
			fmt.Println(line)
		}

		if input == "quit" {
			break
		}
	}
}
