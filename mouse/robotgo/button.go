package robotgo

import (
	"fmt"

	"github.com/allape/openmouse/mouse"
)

// robotgo names the middle button "center", unknown names fall back to left.
var buttonNames = map[mouse.Button]string{
	mouse.Left:   "left",
	mouse.Right:  "right",
	mouse.Middle: "center",
}

func buttonName(b mouse.Button) (string, error) {
	name, ok := buttonNames[b]
	if !ok {
		return "", fmt.Errorf("%w: %q", mouse.ErrInvalidButton, b)
	}
	return name, nil
}
