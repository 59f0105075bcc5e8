// Package cli provides the interactive todokeeper command-line client.
//
// App wires configuration, the local session store and the API services
// into a REPL. A background watcher pings the server and switches the
// prompt between online and offline. A session stored by a previous
// signin is restored on start.
//
// Commands: help, signup, signin, list (l), show, add, edit, toggle,
// delete, ping, logout, exit (quit). Commands that address a todo take
// its id as an argument or prompt for it.
package cli
