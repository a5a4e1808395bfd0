package darc

import (
	"os"
	"runtime/debug"
)

// abort terminates the process. It is used when a reference count goes above
// maxRefs, a ceiling of 1<<62 - 1 that is lower than math.MaxInt64 so that
// racing increments cannot reach the mode bit. Only a logic error or a runaway
// clone loop gets there, and continuing could let the count wrap and free a
// block that is still in use. It cannot be recovered from.
func abort() {
	os.Stderr.WriteString("darc: reference count overflow\n\n")
	os.Stderr.Write(debug.Stack())
	os.Exit(2)
}
