// Package pipeline runs scenes through load → measure → apply → export,
// memoizing results in a [cache.Cache].
//
// The CLI and any long-running service share this package so that scenes
// are built, keyed and cached the same way everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ScenePath: "card.toml",
//	    Width:     80,
//	    Formats:   []string{"text"},
//	})
//	fmt.Print(string(result.Artifacts["text"]))
//
// Stages can also be run on their own:
//
//	s, err := runner.Load(ctx, "card.toml")
//	size, hit, err := runner.MeasureWithCacheInfo(ctx, s, geom.Sz(80, 0), opts)
//	frames, hit, err := runner.ApplyWithCacheInfo(ctx, s, geom.R(0, 0, 80, size.H), opts)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/export"
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/scene"
	"github.com/matzehuels/framekit/pkg/view"
)

const (
	// DefaultWidth is the hint width in terminal cells.
	DefaultWidth = 80.0

	// DefaultTTL is how long results stay cached. Keys include the
	// scene hash, so stale entries are never served; the TTL only bounds
	// storage.
	DefaultTTL = 7 * 24 * time.Hour
)

// Options configures a pipeline run.
type Options struct {
	// ScenePath is the scene file. Source, when set, is used instead of
	// reading the file; ScenePath then only names the scene in logs.
	ScenePath string `json:"scene_path,omitempty"`
	Source    []byte `json:"-"`

	// Width and Height form the measurement hint. A zero height leaves
	// it unbounded. The scene is applied to Width by Height, or by the
	// measured height when Height is zero.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Formats lists the exports to produce.
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Tree    bool     `json:"tree,omitempty"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	TTL    time.Duration `json:"-"`
	Logger *log.Logger   `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.ScenePath == "" && len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scene path or source is required")
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := export.ValidateFormat(f); err != nil {
			return err
		}
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	return nil
}

// Hint returns the measurement hint.
func (o *Options) Hint() geom.Size { return geom.Sz(o.Width, o.Height) }

// ExportOptions returns the Graphviz export options.
func (o *Options) ExportOptions() export.Options {
	return export.Options{Scale: o.Scale, Tree: o.Tree}
}

// Scene is a loaded and built scene.
type Scene struct {
	Path     string
	Hash     string // SHA-256 of the source, used in cache keys
	Document *scene.Document
	Root     *view.Container
}

// Name returns the document name, or the path when it has none.
func (s *Scene) Name() string {
	if s.Document != nil && s.Document.Name != "" {
		return s.Document.Name
	}
	return s.Path
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Scene *Scene

	// Size is the measured size for the hint.
	Size geom.Size

	// Rect is the rect the scene was applied to.
	Rect geom.Rect

	// Frames are the applied frames, root first.
	Frames []view.Snapshot

	// Artifacts holds exports keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Document returns the frames ready for export.
func (r *Result) Document() export.Document {
	return export.Document{Name: r.Scene.Name(), Views: r.Frames}
}

// Stats contains timing and size information.
type Stats struct {
	ViewCount   int
	LoadTime    time.Duration
	MeasureTime time.Duration
	ApplyTime   time.Duration
	ExportTime  time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	MeasureHit bool
	ApplyHit   bool
}
