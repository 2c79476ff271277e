// Package svg turns local SVG files into normalized icon records: it scans
// directories for sources, reconciles width/height/viewBox attributes, and
// re-serializes the markup body without the <svg> wrapper.
package svg

import (
	"os"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/icon"
)

// Parser parses local SVG files into icon records.
type Parser struct {
	log *zap.SugaredLogger
}

// NewParser creates a Parser. A nil logger is replaced with a nop logger.
func NewParser(log *zap.SugaredLogger) *Parser {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Parser{log: log}
}

// ParseFile parses a single SVG file and extracts its icon record.
// Invalid XML or a root element other than <svg> is a hard error; missing
// dimensions are inferred, defaulting to 24x24 with a warning.
func (p *Parser) ParseFile(path string) (icon.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return icon.Record{}, errors.Wrapf(errors.ErrFilesystem, "reading SVG file %s: %v", path, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return icon.Record{}, errors.Wrapf(errors.ErrMalformedSource, "parsing %s as XML: %v", path, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return icon.Record{}, errors.Wrapf(errors.ErrMalformedSource,
			"%s: root element is not <svg>", path)
	}

	var width, height *int
	var vbAttr *string

	if attr := root.SelectAttr("width"); attr != nil {
		width = parseDimension(attr.Value)
	}
	if attr := root.SelectAttr("height"); attr != nil {
		height = parseDimension(attr.Value)
	}
	if attr := root.SelectAttr("viewBox"); attr != nil {
		vbAttr = &attr.Value
	}

	w, h, vb, defaulted, err := resolveDimensions(width, height, vbAttr)
	if err != nil {
		return icon.Record{}, errors.Wrapf(err, "%s", path)
	}
	if defaulted {
		p.log.Warnw("no dimensions found, using default",
			"path", path, "width", icon.DefaultSize, "height", icon.DefaultSize)
	}

	body := serializeBody(root)
	if body == "" {
		p.log.Warnw("SVG has no visible content", "path", path)
	}

	return icon.Record{Body: body, Width: w, Height: h, ViewBox: vb}, nil
}
