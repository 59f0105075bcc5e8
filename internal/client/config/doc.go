// Package config loads runtime configuration for the todokeeper CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags:
//
//	-a string   address:port of the todokeeper gRPC endpoint
//	-i int      online status check interval (seconds)
//	-r int      per-request timeout (seconds)
//	-f string   path of the local session database
//	-no-color   render tables without ANSI styling
//
// JSON keys mirror the flags; durations accept "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "5s",
//	  "no_color": false,
//	  "session_file": "/home/me/.config/todokeeper/session.db"
//	}
package config
