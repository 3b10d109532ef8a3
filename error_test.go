package pagemark_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()
		err := pagemark.Errorf(pagemark.EINVALID, "bad input")
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pagemark.EINTERNAL, pagemark.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", pagemark.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()
		err := pagemark.Errorf(pagemark.ENOTFOUND, "extraction %q not found", "abc")
		assert.Equal(t, `extraction "abc" not found`, pagemark.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", pagemark.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", pagemark.ErrorMessage(nil))
	})
}

func TestErrorf_WrappedErrorsUnwrap(t *testing.T) {
	t.Parallel()

	inner := pagemark.Errorf(pagemark.EINVALID, "inner")
	wrapped := wrap(inner)

	require.Error(t, wrapped)
	assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(wrapped))
	assert.Equal(t, "inner", pagemark.ErrorMessage(wrapped))
}

func wrap(err error) error {
	return errors.Join(errors.New("context"), err)
}
