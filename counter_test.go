package darc

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestCounter(t *testing.T) {
	var ctr counter
	ctr.init(1)
	assert.Equal(t, ctr.mode(), Single)

	for i := 2; i < 10; i++ {
		assert.Equal(t, ctr.increment(), i)
	}
	for i := 8; i >= 0; i-- {
		assert.Equal(t, ctr.decrement(), i)
	}
	assert.Equal(t, ctr.mode(), Single)
}

func TestCounterMulti(t *testing.T) {
	var ctr counter
	ctr.init(3)
	ctr.promote()
	assert.Equal(t, ctr.mode(), Multi)
	assert.Equal(t, ctr.load(), 3)

	assert.Equal(t, ctr.increment(), 4)
	assert.Equal(t, ctr.decrement(), 3)
	assert.Equal(t, ctr.decrement(), 2)
	assert.Equal(t, ctr.decrement(), 1)
	assert.Equal(t, ctr.decrement(), 0)
	assert.Equal(t, ctr.mode(), Multi)
}

func TestCounterPromoteIdempotent(t *testing.T) {
	var ctr counter
	ctr.init(2)
	ctr.promote()
	ctr.promote()
	assert.Equal(t, ctr.mode(), Multi)
	assert.Equal(t, ctr.load(), 2)
}

func TestCounterDemote(t *testing.T) {
	var ctr counter
	ctr.init(1)
	assert.That(t, ctr.demote())
	assert.Equal(t, ctr.mode(), Single)

	ctr.increment()
	ctr.promote()
	assert.That(t, !ctr.demote())
	assert.Equal(t, ctr.mode(), Multi)
	assert.Equal(t, ctr.load(), 2)

	ctr.decrement()
	assert.That(t, ctr.demote())
	assert.Equal(t, ctr.mode(), Single)
	assert.Equal(t, ctr.load(), 1)
	assert.Equal(t, ctr.decrement(), 0)
}

func TestCounterUnderflow(t *testing.T) {
	expectPanic := func(fn func()) {
		t.Helper()
		defer func() {
			t.Helper()
			assert.Equal(t, recover(), "darc: reference count underflow")
		}()
		fn()
	}

	var single counter
	expectPanic(func() { single.decrement() })

	var multi counter
	multi.promote()
	expectPanic(func() { multi.decrement() })
}

func TestMode(t *testing.T) {
	assert.Equal(t, Single.String(), "Single")
	assert.Equal(t, Multi.String(), "Multi")
	assert.Equal(t, Mode(7).String(), "Mode(?)")
}
