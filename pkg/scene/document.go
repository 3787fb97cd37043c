package scene

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/framekit/pkg/errors"
)

// Layout names.
const (
	LayoutVertical = "vertical"
	LayoutFill     = "fill"
	LayoutManual   = "manual"
)

// View kinds.
const (
	KindBox       = "box"
	KindLabel     = "label"
	KindImage     = "image"
	KindContainer = "container"
)

// Document is a decoded scene file.
type Document struct {
	Name   string     `toml:"name"`
	Layout string     `toml:"layout"`
	Fixed  []float64  `toml:"fixed"`
	Views  []ViewSpec `toml:"views"`
}

// ViewSpec describes one view and, for containers, its subtree.
type ViewSpec struct {
	ID         string     `toml:"id"`
	Kind       string     `toml:"kind"`
	Size       []float64  `toml:"size"`
	Text       string     `toml:"text"`
	LineHeight float64    `toml:"line_height"`
	Frame      []float64  `toml:"frame"`
	Reference  []float64  `toml:"reference"`
	Options    []string   `toml:"options"`
	Layout     string     `toml:"layout"`
	Fixed      []float64  `toml:"fixed"`
	Views      []ViewSpec `toml:"views"`
}

// Decode reads a scene from r. Unknown keys are rejected so that typos
// do not silently fall back to defaults.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		var perr toml.ParseError
		if stderrors.As(err, &perr) {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "syntax error at line %d", perr.Position.Line)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &doc, nil
}

// Parse decodes a scene held in memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scene %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			e.Message = path + ": " + e.Message
		}
		return nil, err
	}
	return doc, nil
}

// Count returns the number of views in the document, nested ones
// included.
func (d *Document) Count() int {
	return countViews(d.Views)
}

func countViews(specs []ViewSpec) int {
	n := len(specs)
	for _, s := range specs {
		n += countViews(s.Views)
	}
	return n
}
