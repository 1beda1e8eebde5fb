// Package slug derives URL-safe identifiers from product display names.
//
//	Generate("Classic Tee")     // "classic-tee"
//	Generate("Crème Brûlée #2") // "creme-brulee-2"
//	Generate("Футболка")        // "futbolka"
//
// Generate is a pure function. It does not guarantee uniqueness; the catalog
// repository enforces that when the product is persisted.
package slug

import (
	"errors"
	"fmt"
	"strings"

	gosimple "github.com/gosimple/slug"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Generate transliterates name to ASCII, lower-cases it and joins the words
// with single hyphens. Underscores are treated as word separators.
func Generate(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidArgument)
	}

	s := gosimple.Make(strings.ReplaceAll(name, "_", " "))
	if s == "" {
		return "", fmt.Errorf("%w: %q has no letters or digits after transliteration", ErrInvalidArgument, name)
	}

	return s, nil
}
