package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/view"
)

// DefaultScale is the number of points per layout unit.
const DefaultScale = 8.0

// Options configures Graphviz export.
type Options struct {
	// Scale converts layout units to points. Zero uses DefaultScale.
	Scale float64
	// Tree draws an edge from every container to each subview.
	Tree bool
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return DefaultScale
	}
	return o.Scale
}

// ToDOT writes an undirected Graphviz graph with one fixed-size node per
// view, pinned at the center of its absolute frame. The first snapshot
// is taken as the root; views with an empty frame are left out.
func ToDOT(snaps []view.Snapshot, opts Options) string {
	scale := opts.scale()
	var rootH float64
	if len(snaps) > 0 {
		rootH = snaps[0].Absolute.MaxY()
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, fixedsize=true, fontsize=10, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	drawn := make(map[string]bool, len(snaps))
	for _, s := range snaps {
		r := s.Absolute
		if r.IsEmpty() {
			continue
		}
		drawn[s.ID] = true
		attrs := []string{
			fmt.Sprintf("label=%q", s.ID),
			fmt.Sprintf("pos=\"%s,%s!\"", num(r.CenterX()*scale), num((rootH-r.CenterY())*scale)),
			fmt.Sprintf("width=%s", num(r.W*scale/72)),
			fmt.Sprintf("height=%s", num(r.H*scale/72)),
		}
		attrs = append(attrs, kindAttrs(s.Kind)...)
		fmt.Fprintf(&buf, "  %q [%s];\n", s.ID, strings.Join(attrs, ", "))
	}

	if opts.Tree {
		buf.WriteString("\n")
		for _, s := range snaps {
			if s.Parent != "" && drawn[s.Parent] && drawn[s.ID] {
				fmt.Fprintf(&buf, "  %q -- %q [style=dotted];\n", s.Parent, s.ID)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func kindAttrs(kind string) []string {
	switch kind {
	case "container":
		return []string{"style=dashed", "labelloc=t"}
	case "image":
		return []string{"fillcolor=lightblue"}
	case "label":
		return []string{"style=\"rounded,filled\"", "fillcolor=lightyellow"}
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders DOT source to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag so the image scales from a
// 0,0 origin at its natural size.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
