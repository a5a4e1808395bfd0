//go:build darcdebug

package darc

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
)

// owner tracks the goroutine allowed to use a block while it is in Single
// mode. Handles to a Single block that show up on another goroutine have been
// passed across goroutines without going through a Shared.
type owner struct {
	gid atomic.Int64
}

// claim makes the calling goroutine the owner.
func (o *owner) claim() { o.gid.Store(goid()) }

// check panics if the counter is in Single mode and the calling goroutine is
// not the owner.
func (o *owner) check(refs *counter) {
	if refs.mode() != Single {
		return
	}
	if cur, own := goid(), o.gid.Load(); cur != own {
		panic(fmt.Sprintf(
			"darc: Single mode Ref used on goroutine %d, owned by goroutine %d", cur, own))
	}
}

// leakHook, if set, replaces the stderr report of handles that are garbage
// collected without being released.
var leakHook atomic.Pointer[func(what string)]

func leaked(what string) {
	if hook := leakHook.Load(); hook != nil {
		(*hook)(what)
		return
	}
	fmt.Fprintf(os.Stderr, "darc: %s collected without Release\n", what)
}

// tracker reports the handle it was created for if every copy of it is
// garbage collected before the handle is released or consumed.
type tracker struct {
	tok *leakToken
}

type leakToken struct {
	what string
	done atomic.Bool
}

func newTracker[H any]() tracker {
	tok := &leakToken{what: fmt.Sprintf("%T", *new(H))}
	runtime.SetFinalizer(tok, func(tok *leakToken) {
		if !tok.done.Load() {
			leaked(tok.what)
		}
	})
	return tracker{tok: tok}
}

func (t tracker) done() { t.tok.done.Store(true) }
