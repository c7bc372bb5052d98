package extract

import (
	"errors"
	"fmt"
)

var ErrStructure = errors.New("structure error")

// StructureError reports markup lacking the element that scopes the tree.
type StructureError struct {
	Selector string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: no element matches %s", ErrStructure, e.Selector)
}

func (e *StructureError) Unwrap() error {
	return ErrStructure
}
