package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/icon"
)

// dimensionUnits are the unit suffixes tolerated on width/height attributes.
// Percentages and fractional values are treated as absent.
var dimensionUnits = []string{"px", "pt", "em", "rem", "vh", "vw"}

// parseDimension parses a width/height attribute value, stripping unit
// suffixes. Returns nil when the value cannot be used as an integer pixel
// dimension: "24" -> 24, "24px" -> 24, "1.5em" -> nil, "100%" -> nil.
func parseDimension(attr string) *int {
	if val, err := strconv.ParseUint(attr, 10, 32); err == nil {
		v := int(val)
		return &v
	}

	trimmed := strings.TrimSpace(attr)
	if strings.HasSuffix(trimmed, "%") {
		return nil
	}

	for _, unit := range dimensionUnits {
		num, ok := strings.CutSuffix(trimmed, unit)
		if !ok {
			continue
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			continue
		}
		// Only accept positive whole values
		if val > 0 && val == math.Trunc(val) {
			v := int(val)
			return &v
		}
	}

	return nil
}

// viewBox holds the four parsed fields of a viewBox attribute.
type viewBox struct {
	MinX, MinY    int
	Width, Height int
}

// parseViewBox parses a "minX minY width height" attribute. Any field count
// other than four is a hard error; fields are rounded to the nearest integer.
func parseViewBox(attr string) (viewBox, error) {
	parts := strings.Fields(attr)
	if len(parts) != 4 {
		return viewBox{}, errors.Wrapf(errors.ErrMalformedSource,
			"invalid viewBox %q: expected 4 numbers, got %d", attr, len(parts))
	}

	vals := make([]int, 4)
	names := []string{"minX", "minY", "width", "height"}
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return viewBox{}, errors.Wrapf(errors.ErrMalformedSource,
				"invalid viewBox %s %q", names[i], part)
		}
		vals[i] = int(math.Round(f))
	}

	return viewBox{MinX: vals[0], MinY: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// resolveDimensions reconciles the optional width, height and viewBox
// attributes of a local SVG into a fully-specified triple.
//
// The eight presence combinations resolve as follows: present values are
// used as-is; a missing viewBox is synthesized from width/height; missing
// width/height are read back from the viewBox; a single present dimension
// is mirrored to the other; and when nothing is present the result defaults
// to 24x24 (defaulted=true so the caller can warn).
func resolveDimensions(width, height *int, vbAttr *string) (w, h int, vb string, defaulted bool, err error) {
	switch {
	case width != nil && height != nil && vbAttr != nil:
		return *width, *height, *vbAttr, false, nil

	case width != nil && height != nil:
		return *width, *height, formatViewBox(*width, *height), false, nil

	case width == nil && height == nil && vbAttr != nil:
		parsed, err := parseViewBox(*vbAttr)
		if err != nil {
			return 0, 0, "", false, err
		}
		return parsed.Width, parsed.Height, *vbAttr, false, nil

	case width != nil && vbAttr != nil:
		parsed, err := parseViewBox(*vbAttr)
		if err != nil {
			return 0, 0, "", false, err
		}
		return *width, parsed.Height, *vbAttr, false, nil

	case height != nil && vbAttr != nil:
		parsed, err := parseViewBox(*vbAttr)
		if err != nil {
			return 0, 0, "", false, err
		}
		return parsed.Width, *height, *vbAttr, false, nil

	case width != nil:
		return *width, *width, formatViewBox(*width, *width), false, nil

	case height != nil:
		return *height, *height, formatViewBox(*height, *height), false, nil

	default:
		return icon.DefaultSize, icon.DefaultSize,
			formatViewBox(icon.DefaultSize, icon.DefaultSize), true, nil
	}
}

// formatViewBox builds a zero-origin viewBox string for the given size.
func formatViewBox(w, h int) string {
	return fmt.Sprintf("0 0 %d %d", w, h)
}
