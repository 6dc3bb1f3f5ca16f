package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMatchesByCode(t *testing.T) {
	cause := errors.New("pdftoppm exited 1")
	err := fmt.Errorf("run: %w", NewRasterizationError(cause))

	assert.ErrorIs(t, err, ErrRasterization)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrClassification)

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeRasterization, appErr.Code)
	assert.Contains(t, err.Error(), "RASTERIZATION_ERROR")
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(NewAppError(CodePageOCR, "page 2", nil)))
	assert.True(t, IsFatal(NewProcessingTimeoutError("dispatching", nil)))
	assert.True(t, IsFatal(errors.New("boom")))
}
