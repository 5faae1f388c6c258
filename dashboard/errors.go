package dashboard

import (
	"errors"
	"fmt"
)

// ErrNoItemBeingEdited is returned by Update when no edit was opened.
var ErrNoItemBeingEdited = errors.New("no food is being edited")

// MismatchError reports an update response whose id matches no entry of
// the canonical list.
type MismatchError struct {
	ID int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("updated food %d is not in the list", e.ID)
}
