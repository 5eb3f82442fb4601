package util

import (
	"fmt"
	"os"
)

// Die is like fmt.Printf, but writes to stderr, adds a newline, and
// terminates the process.
func Die(format string, a ...interface{}) {
	_ = Logger().Sync()
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// Panicf is a composition of fmt.Sprintf and panic.
func Panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

// Log is like fmt.Println, but writes to stderr. It is used for
// messages that explain an empty result.
func Log(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}
