// Package io holds the small logging helpers used by the labelgtc CLI,
// in the same spirit as gotree's own root io
// package: plain stderr logging, no structured logging dependency (none
// of the example repos with a go.mod pull one in either).
package io

import (
	"fmt"
	"log"
	"os"
)

// Verbose enables debug-level logging when set by the CLI's -v flag.
var Verbose = false

var logger = log.New(os.Stderr, "", log.LstdFlags)

// LogError logs err to stderr, prefixed, without terminating the process.
func LogError(err error) {
	if err == nil {
		return
	}
	logger.Println("Error:", err)
}

// Debug logs a formatted message only when Verbose is set.
func Debug(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	logger.Println("Debug: " + fmt.Sprintf(format, args...))
}

// Info logs a formatted informational message.
func Info(format string, args ...interface{}) {
	logger.Println("Info: " + fmt.Sprintf(format, args...))
}

// Warn logs a formatted warning: informational, not an error.
func Warn(format string, args ...interface{}) {
	logger.Println("Warning: " + fmt.Sprintf(format, args...))
}

// ExitWithMessage logs err and terminates the process with status 1.
// The engine package never calls it.
func ExitWithMessage(err error) {
	LogError(err)
	os.Exit(1)
}
