// Package icon defines the normalized icon record shared by the registry
// and local SVG ingestion paths.
package icon

// DefaultSize is the fallback dimension when neither the source nor its
// collection specifies one.
const DefaultSize = 24

// Record is the normalized unit produced by either source pipeline and
// consumed by code emission. All four fields are populated by the time a
// record leaves dimension resolution; no partial records exist downstream.
type Record struct {
	// Body is the inner SVG markup with the <svg> wrapper stripped
	Body string

	// Width and Height are the rendered dimensions in user units
	Width  int
	Height int

	// ViewBox is the "minX minY width height" attribute string
	ViewBox string
}
