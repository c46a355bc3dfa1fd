package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const (
	helpLoggedOut = "Available commands: help, register, login, select, analyze, show, preview, whoami, exit"
	helpLoggedIn  = "Available commands: help, select, analyze, show, preview, whoami, logout, exit"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Select(ctx context.Context, args []string) error
	Analyze(ctx context.Context, args []string) error
	Show(ctx context.Context) error
	Preview(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help                     show available commands
//	  - select <path|s3://..>... pick a photo
//	  - analyze [path...]        upload the photo and print the analysis
//	  - show                     print the current analysis
//	  - preview <out.jpg>        save the normalized photo
//	  - whoami                   show the stored session
//	  - exit | quit              leave the program
//
//	Not logged in:
//	  - register                 create an account
//	  - login                    authenticate
//
//	Logged in:
//	  - logout                   forget the session
//
// Command errors are reported by the handlers themselves and ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func(ctx context.Context) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ff %s> ", statusFn(ctx)))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "select":
			_ = a.Select(ctx, args)

		case "analyze":
			_ = a.Analyze(ctx, args)

		case "show":
			_ = a.Show(ctx)

		case "preview":
			_ = a.Preview(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
