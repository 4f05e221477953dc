package blueprint

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedRange is the blueprint schema range this build understands.
const SupportedRange = "1.0.x"

// CheckVersion verifies the declared blueprint version against an npm-style
// constraint range. It runs before any filesystem mutation so an incompatible
// blueprint fails fast.
func CheckVersion(declared, allowed string) error {
	c, err := semver.NewConstraint(allowed)
	if err != nil {
		return fmt.Errorf("invalid supported range %q: %w", allowed, err)
	}
	v, err := semver.NewVersion(declared)
	if err != nil {
		return fmt.Errorf("invalid blueprint version %q: %w", declared, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("blueprint version %s is outside the supported range %s", declared, allowed)
	}
	return nil
}
