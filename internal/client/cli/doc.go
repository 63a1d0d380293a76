// Package cli provides the interactive userdesk shell.
//
// It wires configuration, the local session database, the HTTP transport,
// the users repository and both controllers, then runs a REPL on top of
// them. Every navigation goes through the navigation guard, so data commands
// bounce to the login route until a session exists.
//
// Commands:
//   - login / logout / whoami
//   - go <path>          navigate (guarded)
//   - list               fetch all users
//   - show <id>          print one user
//   - add / edit <id>    create or update a user interactively
//   - delete <id>        delete a user
//   - clear              dismiss the last error
//   - help / exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
