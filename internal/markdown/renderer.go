package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// Supported flavors.
const (
	FlavorMinimal  = "minimal"
	FlavorExtended = "extended"
)

// ErrUnknownFlavor is returned by New for unsupported flavor names.
var ErrUnknownFlavor = errors.New("unknown markdown flavor")

// Renderer converts a post body into an HTML fragment.
type Renderer interface {
	Render(body string) (string, error)
}

// Flavors lists the accepted flavor names.
func Flavors() []string {
	return []string{FlavorMinimal, FlavorExtended}
}

// New returns the renderer for flavor. An empty flavor selects minimal.
// style only applies to the extended flavor.
func New(flavor, style string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(flavor)) {
	case "", FlavorMinimal:
		return Minimal{}, nil
	case FlavorExtended:
		return NewExtended(style), nil
	default:
		return nil, fmt.Errorf("%w %q (want %s)", ErrUnknownFlavor, flavor, strings.Join(Flavors(), " or "))
	}
}
