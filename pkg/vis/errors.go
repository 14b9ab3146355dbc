package vis

import (
	"errors"
	"fmt"

	verrors "github.com/aili-dev/vistree/pkg/errors"
)

// ErrCycle is the sentinel wrapped by every structural-violation error
// SetParent returns. Test with errors.Is(err, vis.ErrCycle).
var ErrCycle = errors.New("parent assignment would create a cycle")

func structuralViolation(element, newParent *Element) error {
	return verrors.New(
		"vis.Element.SetParent",
		verrors.KindStructural,
		fmt.Errorf("%w: %q is %q or a descendant of it", ErrCycle, newParent.tagName, element.tagName),
	)
}
