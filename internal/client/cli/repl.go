package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/services"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: signup, signin, ping, exit"
	helpLoggedIn  = "Available commands: (l)ist, show <id>, add, edit <id>, toggle <id>, delete <id>, ping, logout, exit"
)

// runREPL reads one command per line from in and dispatches it to a. It
// returns on EOF or on "exit"/"quit". Todo commands are refused until the
// user has signed in. Command errors are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("todo %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "signup":
			cmdErr = a.Signup(ctx)

		case "signin", "login":
			cmdErr = a.Signin(ctx)

		case "ping":
			cmdErr = a.Ping(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "l", "list", "show", "add", "edit", "toggle", "delete":
			if !a.isLoggedIn() {
				printlnFn("Please signin first")
				continue
			}
			cmdErr = dispatchTodo(ctx, a, cmd, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			reportError(cmdErr)
		}
	}
}

func dispatchTodo(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "l", "list":
		return a.List(ctx)
	case "show":
		return a.Show(ctx, args)
	case "add":
		return a.Add(ctx)
	case "edit":
		return a.Edit(ctx, args)
	case "toggle":
		return a.Toggle(ctx, args)
	default:
		return a.Delete(ctx, args)
	}
}

func reportError(err error) {
	switch {
	case services.IsSessionExpired(err):
		printlnFn("Not authorized, please signin again")
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Server unavailable, try again later")
	case errors.Is(err, client.ErrNotFound):
		printlnFn("Todo not found")
	default:
		printlnFn("Error:", err.Error())
	}
}
