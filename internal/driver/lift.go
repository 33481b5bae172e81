package driver

import (
	"fmt"

	"spvlift/internal/raw"
	"spvlift/internal/sr"
)

// Lift reads a serialized raw module from path and converts it to its
// structured form. Each call runs its own conversion pass, so concurrent
// lifts of different files never share state.
func Lift(path string) (*sr.Module, error) {
	rawMod, err := raw.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := sr.FromRaw(rawMod)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
