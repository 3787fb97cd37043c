package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/layout"
	"github.com/matzehuels/framekit/pkg/view"
)

// RootID identifies the container Build returns.
const RootID = "root"

// Slot is one subview of a manual layout: the requested frame, the
// reference rect it aligns in, and the resolution options.
type Slot struct {
	View      layout.View
	Frame     geom.Rect
	Reference *geom.Rect // nil aligns in the container bounds
	Options   layout.Options
}

// ManualFunc resolves every slot in order. It occupies the furthest right
// and bottom edges of the resolved frames.
func ManualFunc(slots []Slot) layout.Func {
	return func(p *layout.Pass, size geom.Size) geom.Size {
		bounds := geom.RectFrom(geom.Point{}, size)
		var out geom.Size
		for _, s := range slots {
			ref := bounds
			if s.Reference != nil {
				ref = *s.Reference
			}
			f := p.SetFrameIn(s.Frame, ref, s.View, s.Options)
			out.W = max(out.W, f.MaxX())
			out.H = max(out.H, f.MaxY())
		}
		return out
	}
}

// Build turns doc into a view tree rooted at a container with id
// [RootID]. Views without an id get a name-based UUID derived from the
// scene name and the view's position, written back into doc, so the same
// document always yields the same ids. Engine options such as
// [layout.WithLogger] are applied to every container.
func Build(doc *Document, opts ...layout.Option) (*view.Container, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidScene, "empty scene")
	}
	b := &builder{
		seen: map[string]bool{RootID: true},
		opts: opts,
		ns:   uuid.NewSHA1(uuid.NameSpaceURL, []byte("framekit:scene:"+doc.Name)),
	}
	root := view.NewContainer(RootID)
	if err := b.fill(root, doc.Layout, doc.Fixed, doc.Views, "scene"); err != nil {
		return nil, err
	}
	return root, nil
}

type builder struct {
	seen map[string]bool
	opts []layout.Option
	ns   uuid.UUID
}

func (b *builder) fill(c *view.Container, layoutName string, fixed []float64, specs []ViewSpec, where string) error {
	kind, err := parseLayout(layoutName, where)
	if err != nil {
		return err
	}
	fixedSize, err := sizeOf(fixed, where+" fixed")
	if err != nil {
		return err
	}

	var slots []Slot
	for i := range specs {
		s := &specs[i]
		if s.ID == "" {
			s.ID = uuid.NewSHA1(b.ns, fmt.Appendf(nil, "%s/%d", where, i)).String()
		}
		v, err := b.view(s)
		if err != nil {
			return err
		}
		c.AddSubview(v)

		slot, err := slotOf(s, v, kind)
		if err != nil {
			return err
		}
		slots = append(slots, slot)
	}

	opts := append(slices.Clone(b.opts), layout.WithFixedSize(fixedSize))
	switch kind {
	case LayoutFill:
		c.SetLayout(layout.FillFunc(c), opts...)
	case LayoutManual:
		c.SetLayout(ManualFunc(slots), opts...)
	default:
		c.SetLayout(layout.VerticalFunc(c), opts...)
	}
	return nil
}

func (b *builder) view(s *ViewSpec) (layout.View, error) {
	if err := errors.ValidateViewID(s.ID); err != nil {
		return nil, err
	}
	if b.seen[s.ID] {
		return nil, errors.New(errors.ErrCodeInvalidView, "duplicate view id %q", s.ID)
	}
	b.seen[s.ID] = true

	where := fmt.Sprintf("view %q", s.ID)
	if s.Kind != KindLabel && s.Text != "" {
		return nil, errors.New(errors.ErrCodeInvalidView, "%s: text is only valid for labels", where)
	}
	if s.Kind != KindContainer && (len(s.Views) > 0 || s.Layout != "" || len(s.Fixed) > 0) {
		return nil, errors.New(errors.ErrCodeInvalidView, "%s: views, layout and fixed are only valid for containers", where)
	}

	size, err := sizeOf(s.Size, where+" size")
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case KindBox:
		return view.NewBox(s.ID, size), nil
	case KindImage:
		return view.NewImage(s.ID, size), nil
	case KindLabel:
		if err := errors.ValidateDimension(where+" line_height", s.LineHeight); err != nil {
			return nil, err
		}
		l := view.NewLabel(s.ID, s.Text)
		if s.LineHeight > 0 {
			l.LineHeight = s.LineHeight
		}
		return l, nil
	case KindContainer:
		if len(s.Size) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidView, "%s: containers take fixed, not size", where)
		}
		c := view.NewContainer(s.ID)
		if err := b.fill(c, s.Layout, s.Fixed, s.Views, where); err != nil {
			return nil, err
		}
		return c, nil
	case "":
		return nil, errors.New(errors.ErrCodeInvalidView, "%s: missing kind", where)
	default:
		return nil, errors.New(errors.ErrCodeInvalidView, "%s: unknown kind %q", where, s.Kind)
	}
}

func slotOf(s *ViewSpec, v layout.View, kind string) (Slot, error) {
	where := fmt.Sprintf("view %q", s.ID)
	if kind != LayoutManual {
		if len(s.Frame) > 0 || len(s.Reference) > 0 || len(s.Options) > 0 {
			return Slot{}, errors.New(errors.ErrCodeInvalidView,
				"%s: frame, reference and options need a manual layout", where)
		}
		return Slot{View: v}, nil
	}

	frame, err := rectOf(s.Frame, where+" frame")
	if err != nil {
		return Slot{}, err
	}
	opts, err := layout.ParseOptions(strings.Join(s.Options, ","))
	if err != nil {
		return Slot{}, errors.New(errors.ErrCodeInvalidOptions, "%s: %s", where, errors.UserMessage(err))
	}
	slot := Slot{View: v, Frame: frame, Options: opts}
	if len(s.Reference) > 0 {
		ref, err := rectOf(s.Reference, where+" reference")
		if err != nil {
			return Slot{}, err
		}
		slot.Reference = &ref
	}
	return slot, nil
}

func parseLayout(name, where string) (string, error) {
	switch name {
	case "", LayoutVertical:
		return LayoutVertical, nil
	case LayoutFill, LayoutManual:
		return name, nil
	}
	return "", errors.New(errors.ErrCodeInvalidScene, "%s: unknown layout %q", where, name)
}

func sizeOf(v []float64, field string) (geom.Size, error) {
	switch len(v) {
	case 0:
		return geom.Size{}, nil
	case 2:
	default:
		return geom.Size{}, errors.New(errors.ErrCodeInvalidInput, "%s: want [w, h], got %d values", field, len(v))
	}
	for _, d := range v {
		if err := errors.ValidateDimension(field, d); err != nil {
			return geom.Size{}, err
		}
	}
	return geom.Sz(v[0], v[1]), nil
}

func rectOf(v []float64, field string) (geom.Rect, error) {
	switch len(v) {
	case 0:
		return geom.Rect{}, nil
	case 4:
	default:
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidInput, "%s: want [x, y, w, h], got %d values", field, len(v))
	}
	for _, c := range v[:2] {
		if err := errors.ValidateCoordinate(field, c); err != nil {
			return geom.Rect{}, err
		}
	}
	for _, d := range v[2:] {
		if err := errors.ValidateDimension(field, d); err != nil {
			return geom.Rect{}, err
		}
	}
	return geom.R(v[0], v[1], v[2], v[3]), nil
}
