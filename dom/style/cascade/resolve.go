package cascade

import (
	"fmt"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
)

// Resolve finalizes the cascaded style of an element, using the final
// style of its parent. parent is nil for the root element. The cascaded
// style is not modified; the final style is returned as a new style.
//
// For every property:
//
//   - a concrete value from the cascade is kept
//   - 'inherit', 'unset' on an inherited property, and no value on an
//     inherited property take the parent's value; the root element takes
//     the initial value instead
//   - 'initial', 'revert', 'unset' on a non-inherited property, and no
//     value on a non-inherited property take the initial value
//
// An error wrapping ErrMissingDefault is returned if a needed host default
// is missing. The style of the element is unusable then, but other
// elements are not affected.
func Resolve(parent, cascaded *computed.Style, defaults DefaultProvider) (*computed.Style, error) {
	result := computed.New()
	for i := 0; i < style.PropertyCount; i++ {
		id := style.PropertyID(i)
		ops := operations[id]
		sl := cascaded.Slot(id)
		switch {
		case sl.IsFinal():
			ops.Copy(cascaded, result)
			continue
		case takesParentValue(id, sl) && parent != nil:
			ops.Compose(parent, cascaded, result)
			if result.Slot(id).IsFinal() {
				continue
			}
			tracer().Errorf("%s: parent style is not final, using initial value", id)
		case sl.Marker == bytecode.FlagValueRevert:
			tracer().Debugf("%s: revert resolves to initial value", id)
		}
		if err := ops.Initial(result, defaults); err != nil {
			return nil, fmt.Errorf("resolving %s: %w", id, err)
		}
	}
	return result, nil
}
