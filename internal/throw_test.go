package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "invariant violated: kaboom!")
		var invariant *InvariantError
		assert.True(t, errors.As(err, &invariant))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with foreign error panic", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandlePanicRecover(recover())
			}()
			panic(errors.New("not ours"))
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestIsRecoverable(t *testing.T) {
	assert.True(t, IsRecoverable(degenerateGeometryErrorf("flat")))
	assert.True(t, IsRecoverable(noIntersectionErrorf("miss")))
	assert.True(t, IsRecoverable(errors.Wrap(noIntersectionErrorf("miss"), "cutting")))
	assert.False(t, IsRecoverable(configurationErrorf("bad")))
	assert.False(t, IsRecoverable(degenerateTriangleErrorf("bad")))
	assert.False(t, IsRecoverable(nil))
}
