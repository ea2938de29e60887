//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"beautify-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")
	cause := errors.New("cause")

	t.Run("mark and cause both match errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil error yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("message keeps both sides", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.Contains(t, err.Error(), "sentinel")
		assert.Contains(t, err.Error(), "cause")
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "outer")
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		require.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("wrapped cause still matches", func(t *testing.T) {
		cause := errors.New("cause")
		err := errs.Wrap(cause, "context")
		assert.ErrorIs(t, err, cause)
	})
}
