package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Go(ctx context.Context, path string) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ClearError(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, whoami, go <path>, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, show <id>, add, edit <id>, delete <id>, clear, go <path>, whoami, logout, help, exit"
)

// runREPL reads one command per line from r and dispatches it to a. It stops
// on EOF, on "exit"/"quit" or when ctx is done. Handler errors are reported
// by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "userdesk %s> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withArg := func(usage string, fn func(context.Context, string) error) {
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage:", usage)
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "go":
			withArg("go <path>", a.Go)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			withArg("show <id>", a.Show)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			withArg("edit <id>", a.Edit)

		case "delete", "rm":
			withArg("delete <id>", a.Delete)

		case "clear":
			_ = a.ClearError(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
