package utils

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

// Check panics when err is set. Reserved for failures that leave the table
// in a state it cannot recover from.
func Check(err error, msg string) {
	if err != nil {
		fail(errors.Wrap(err, msg))
	}
}

// Assert panics when an internal invariant of the loop is broken.
func Assert(ok bool, msg string) {
	if !ok {
		fail(errors.New("assertion failed: " + msg))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, chalk.Red.Color(err.Error()))
	panic(err)
}
