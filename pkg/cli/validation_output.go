package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/githubnext/gh-prtitle/pkg/console"
)

// FormatCommandError formats a command error for console output. A failed
// validation has already been reported title by title, so it gets a short
// summary instead of the raw error.
func FormatCommandError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrValidationFailed) {
		return console.FormatErrorMessage("PR title validation failed; see the issues above")
	}
	return console.FormatErrorMessage(err.Error())
}

// PrintCommandError writes FormatCommandError(err) to w.
func PrintCommandError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, FormatCommandError(err))
}
