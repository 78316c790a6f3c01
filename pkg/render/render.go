package render

import (
	"context"
	"fmt"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// Output formats.
const (
	FormatText   = "text"
	FormatArrows = "arrows"
	FormatMask   = "mask"
	FormatDOT    = "dot"
	FormatXDOT   = "xdot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText:   true,
	FormatArrows: true,
	FormatMask:   true,
	FormatDOT:    true,
	FormatXDOT:   true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeUnsupported,
			"invalid format: %q (must be one of: text, arrows, mask, dot, xdot)", format)
	}
	return nil
}

// Render produces the route over grid in the given format.
func Render(ctx context.Context, format string, grid *terrain.Grid, path []terrain.CellID) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case FormatText:
		return []byte(Text(grid, path)), nil
	case FormatArrows:
		return []byte(Arrows(grid, path)), nil
	case FormatMask:
		return []byte(Mask(grid, path)), nil
	case FormatDOT:
		return []byte(ToDOT(grid, path, DOTOptions{})), nil
	case FormatXDOT:
		return RenderXDOT(ctx, ToDOT(grid, path, DOTOptions{}))
	}
	return nil, fmt.Errorf("unhandled format %q", format)
}

// onPath returns a per-cell membership table for path.
func onPath(grid *terrain.Grid, path []terrain.CellID) []bool {
	in := make([]bool, grid.Len())
	for _, id := range path {
		in[id] = true
	}
	return in
}
