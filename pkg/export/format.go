package export

import (
	"context"
	"strings"

	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/view"
)

// Output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "text"
)

// Formats lists the supported formats.
var Formats = []string{FormatText, FormatJSON, FormatDOT, FormatSVG, FormatPNG}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)",
		format, strings.Join(Formats, ", "))
}

// Render writes doc in the given format.
func Render(ctx context.Context, doc Document, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return ToJSON(doc)
	case FormatText:
		return []byte(ToText(doc.Views)), nil
	}

	dot := ToDOT(doc.Views, opts)
	switch format {
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	}
	return []byte(dot), nil
}

// Document is a laid-out scene ready for export.
type Document struct {
	Name  string          `json:"name,omitempty"`
	Views []view.Snapshot `json:"views"`
}
