// SPDX-License-Identifier: Unlicense OR MIT

/*
Package icon resolves icon image files.

An Icon names an image by its base path with the extension omitted.
Each backend declares the extensions it can display, in preference
order; resolution probes base+ext for each and returns the first file
that exists. Backends that want size variants probe base-<size>+ext
first and fall back to the plain base.
*/
package icon

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoVariants is returned when no image file exists for any
// requested variant.
var ErrNoVariants = errors.New("no image variants found")

// Icon names an image by its extensionless base path.
type Icon struct {
	Base string
}

// Default is the fallback icon shipped with the toolkit. Backends use
// it when an app icon fails to resolve.
var Default = Icon{Base: "resources/terrazzo"}

// Resolve returns the path of the first existing file among base+ext
// for each extension in order. It returns ErrNoVariants when none
// exists.
func (ic Icon) Resolve(extensions []string) (string, error) {
	for _, ext := range extensions {
		path := ic.Base + ext
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("icon %q: %w", ic.Base, ErrNoVariants)
}

// ResolveSized returns, for each size, the first existing file among
// base-<size>+ext, falling back to the unsized base+ext. Sizes with no
// match are absent from the result; an empty result is ErrNoVariants.
func (ic Icon) ResolveSized(sizes []int, extensions []string) (map[int]string, error) {
	found := make(map[int]string)
	for _, size := range sizes {
		sized := Icon{Base: fmt.Sprintf("%s-%d", ic.Base, size)}
		if path, err := sized.Resolve(extensions); err == nil {
			found[size] = path
			continue
		}
		if path, err := ic.Resolve(extensions); err == nil {
			found[size] = path
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("icon %q: %w", ic.Base, ErrNoVariants)
	}
	return found, nil
}
