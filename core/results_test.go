package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationResult(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		result := SuccessResult("payload")

		assert.True(t, result.IsSuccess())
		assert.False(t, result.IsFailure())
		assert.Equal(t, "payload", result.Data())
		assert.Empty(t, result.Errors())
	})

	t.Run("Failure_PreservesErrorOrder", func(t *testing.T) {
		result := FailureResult[string](
			OperationError{Code: "first"},
			OperationError{Code: "second"},
		)

		require.True(t, result.IsFailure())
		assert.Equal(t, []string{"first", "second"}, result.ErrorCodes())
		assert.Empty(t, result.Data())
	})

	t.Run("Failure_WithPartialData", func(t *testing.T) {
		result := FailureResultWithData("partial", OperationError{Code: "oops"})

		require.True(t, result.IsFailure())
		assert.Equal(t, "partial", result.Data())
		assert.Equal(t, []string{"oops"}, result.ErrorCodes())
	})

	t.Run("ZeroValue_IsNeitherSuccessNorFailure", func(t *testing.T) {
		var result OperationResult[string]

		assert.False(t, result.IsSuccess())
		assert.False(t, result.IsFailure())
	})
}
