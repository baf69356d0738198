package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// errorer is implemented by App to render command errors.
type errorer interface {
	describe(err error) string
}

// runREPL reads commands line by line and dispatches them until EOF,
// "exit" or "quit". Command errors are printed and do not stop the loop.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("hexplay> ")
		if !scanner.Scan() {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		known, err := dispatch(ctx, a, cmd, args)
		if !known {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err != nil {
			msg := err.Error()
			if e, ok := a.(errorer); ok {
				msg = e.describe(err)
			}
			printlnFn("Error:", msg)
		}

		if ctx.Err() != nil {
			return
		}
	}
}
