package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	ListEmployees(ctx context.Context) error
	AddEmployee(ctx context.Context) error
	ShowEmployee(ctx context.Context, employeeID string) error
	UpdateEmployee(ctx context.Context, employeeID string) error
	RemoveEmployee(ctx context.Context, employeeID string) error
	MarkAttendance(ctx context.Context) error
	ListAttendance(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Export(ctx context.Context, path string) error
}

// runREPL is the console's read–eval–print loop: read a line, take the
// first token as the command, dispatch to 'a'. The loop exits on scanner
// EOF or "exit"/"quit". Handlers print their own errors; the loop only
// reports unknown commands and argument usage.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hr (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Commands: employees, add, show <id>, update <id>, remove <id>,")
				printlnFn("          mark, attendance [start] [end] [status], history <id> [start] [end],")
				printlnFn("          dashboard, export <path.xlsx>, whoami, refresh, logout, exit")
			} else {
				printlnFn("Commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "employees", "list":
			_ = a.ListEmployees(ctx)

		case "add":
			_ = a.AddEmployee(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <employee_id>")
				continue
			}
			_ = a.ShowEmployee(ctx, args[0])

		case "update":
			if len(args) == 0 {
				printlnFn("Usage: update <employee_id>")
				continue
			}
			_ = a.UpdateEmployee(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <employee_id>")
				continue
			}
			_ = a.RemoveEmployee(ctx, args[0])

		case "mark":
			_ = a.MarkAttendance(ctx)

		case "attendance":
			_ = a.ListAttendance(ctx, args)

		case "history":
			if len(args) == 0 {
				printlnFn("Usage: history <employee_id> [start] [end]")
				continue
			}
			_ = a.History(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "export":
			if len(args) == 0 {
				printlnFn("Usage: export <path.xlsx>")
				continue
			}
			_ = a.Export(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
