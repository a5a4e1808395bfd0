//go:build darcdebug

package darc

import "runtime"

// goid returns the id of the calling goroutine, parsed from the header line
// of its stack trace: "goroutine 123 [running]:".
func goid() int64 {
	var buf [64]byte
	return parseGID(buf[:runtime.Stack(buf[:], false)])
}

// parseGID extracts the goroutine id from the start of a stack trace. It
// returns 0 if the trace doesn't start with the expected prefix.
func parseGID(buf []byte) (gid int64) {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		gid = gid*10 + int64(c-'0')
	}
	return gid
}
