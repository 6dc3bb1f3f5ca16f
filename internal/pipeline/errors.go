package pipeline

import (
	"fmt"

	"github.com/joseph-ayodele/scriptsense/internal/common"
)

// PageError is a recorded, non-fatal failure of one page.
type PageError struct {
	PageIndex int
	Err       error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.PageIndex+1, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

func (e *PageError) Is(target error) bool {
	t, ok := target.(*common.AppError)
	return ok && t.Code == common.CodePageOCR
}
