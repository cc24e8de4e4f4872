package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "ORD123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORD123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORD123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "alice", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: alice (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("address")

		assert.Equal(t, "address", err.ParamName)
		assert.Equal(t, "value is required: address", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank")
		err := errs.NewValueIsRequiredErrorWithCause("phone", cause)

		assert.Equal(t, "value is required: phone (cause: blank)", err.Error())
	})
}

func TestIllegalTransitionError(t *testing.T) {
	err := errs.NewIllegalTransitionError("ORD1", "Cancelled", "Paid")

	assert.Equal(t, "illegal transition: order ORD1 cannot move from Cancelled to Paid", err.Error())
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	t.Run("sanitizes newlines in order id", func(t *testing.T) {
		err := errs.NewIllegalTransitionError("ORD\n1", "Paid", "Paid")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("order", "ORD1", 3)

	assert.Equal(t, "concurrent modification: order ORD1 is no longer at version 3", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
}

func TestStorageError(t *testing.T) {
	t.Run("unwraps to sentinel and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewStorageError("commit", cause)

		assert.Equal(t, "storage failure: commit (cause: connection reset)", err.Error())
		require.ErrorIs(t, err, errs.ErrStorage)
		require.ErrorIs(t, err, cause)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStorageError("commit", nil)

		assert.Equal(t, "storage failure: commit", err.Error())
		require.ErrorIs(t, err, errs.ErrStorage)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "illegal transition", errs.ErrIllegalTransition.Error())
	assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
	assert.Equal(t, "storage failure", errs.ErrStorage.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("phone"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("phone"), errs.ErrValueIsRequired)

	joined := errors.Join(errs.NewValueIsRequiredError("address"), errs.NewValueIsInvalidError("quantity"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
