// Package commands holds the handlers the worker executes for each slash
// command. Handlers absorb upstream failures into user-facing text; the only
// errors they return are ones the worker should replace with its generic
// failure message.
package commands

import "strings"

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
