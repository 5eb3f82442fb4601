package util

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/replit/xref/internal/config"
)

// ProgressMsg prints msg to stdout prefixed with an arrow, unless
// --quiet was given.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Println("-->", msg)
	}
}

// QuoteCmd renders cmd as a shell command line for progress messages.
// Arguments spanning several lines are elided.
func QuoteCmd(cmd []string) string {
	cleanedCmd := make([]string, len(cmd))
	copy(cleanedCmd, cmd)
	for i := range cmd {
		if strings.ContainsRune(cmd[i], '\n') {
			cleanedCmd[i] = "<secret sauce>"
		}
	}
	return shellquote.Join(cleanedCmd...)
}
