package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framekit/pkg/cache"
	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/export"
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/layout"
	"github.com/matzehuels/framekit/pkg/observability"
	"github.com/matzehuels/framekit/pkg/scene"
	"github.com/matzehuels/framekit/pkg/view"
)

// Cache key types reported to observability hooks.
const (
	keyTypeMeasure = "measure"
	keyTypeFrames  = "frames"
)

// Runner executes pipeline stages with caching. It holds no per-run
// state, so one Runner can serve concurrent runs on different scenes.
// A single Scene must not be used by two runs at once.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses the default one and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute loads, measures and applies a scene and produces the requested
// exports.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	result := &Result{Artifacts: make(map[string][]byte)}

	start := time.Now()
	var s *Scene
	var err error
	if len(opts.Source) > 0 {
		s, err = r.LoadSource(ctx, opts.ScenePath, opts.Source)
	} else {
		s, err = r.Load(ctx, opts.ScenePath)
	}
	if err != nil {
		return nil, err
	}
	result.Scene = s
	result.Stats.LoadTime = time.Since(start)
	result.Stats.ViewCount = s.Document.Count()
	logger.Info("loaded scene", "scene", s.Name(), "views", result.Stats.ViewCount, "duration", result.Stats.LoadTime)

	start = time.Now()
	size, hit, err := r.MeasureWithCacheInfo(ctx, s, opts.Hint(), opts)
	if err != nil {
		return nil, err
	}
	result.Size = size
	result.Stats.MeasureTime = time.Since(start)
	result.CacheInfo.MeasureHit = hit
	logger.Info("measured scene", "hint", opts.Hint(), "size", size, "cached", hit, "duration", result.Stats.MeasureTime)

	rect := geom.R(0, 0, opts.Width, opts.Height)
	if rect.H == 0 {
		rect.H = size.H
	}
	start = time.Now()
	frames, hit, err := r.ApplyWithCacheInfo(ctx, s, rect, opts)
	if err != nil {
		return nil, err
	}
	result.Rect = rect
	result.Frames = frames
	result.Stats.ApplyTime = time.Since(start)
	result.CacheInfo.ApplyHit = hit
	logger.Info("applied scene", "rect", rect, "views", len(frames), "cached", hit, "duration", result.Stats.ApplyTime)

	start = time.Now()
	for _, format := range opts.Formats {
		data, err := r.Export(ctx, result.Document(), format, opts.ExportOptions())
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}
	result.Stats.ExportTime = time.Since(start)
	if len(opts.Formats) > 0 {
		logger.Info("exported scene", "formats", opts.Formats, "duration", result.Stats.ExportTime)
	}

	return result, nil
}

// Load reads, decodes and builds the scene file at path.
func (r *Runner) Load(ctx context.Context, path string) (*Scene, error) {
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
	return r.LoadSource(ctx, path, data)
}

// LoadSource decodes and builds a scene held in memory. path only names
// the scene.
func (r *Runner) LoadSource(ctx context.Context, path string, data []byte) (s *Scene, err error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	defer func() {
		n := 0
		if s != nil {
			n = s.Document.Count()
		}
		hooks.OnLoadComplete(ctx, path, n, time.Since(start), err)
	}()

	doc, err := scene.Parse(data)
	if err != nil {
		return nil, err
	}
	root, err := scene.Build(doc, layout.WithLogger(r.Logger))
	if err != nil {
		return nil, err
	}
	return &Scene{Path: path, Hash: cache.Hash(data), Document: doc, Root: root}, nil
}

// MeasureWithCacheInfo returns the size s needs for hint and whether it
// came from the cache.
func (r *Runner) MeasureWithCacheInfo(ctx context.Context, s *Scene, hint geom.Size, opts Options) (geom.Size, bool, error) {
	key := r.Keyer.MeasureKey(s.Hash, hint)

	var size geom.Size
	if r.lookup(ctx, key, keyTypeMeasure, opts, &size) {
		return size, true, nil
	}

	size = s.Root.SizeThatFits(hint)
	r.store(ctx, key, keyTypeMeasure, opts, size)
	return size, false, nil
}

// Measure is MeasureWithCacheInfo without the cache hit flag.
func (r *Runner) Measure(ctx context.Context, s *Scene, hint geom.Size, opts Options) (geom.Size, error) {
	size, _, err := r.MeasureWithCacheInfo(ctx, s, hint, opts)
	return size, err
}

// ApplyWithCacheInfo lays s out in rect and returns the resulting frames
// and whether they came from the cache. Frames served from the cache are
// not committed to the scene's views.
func (r *Runner) ApplyWithCacheInfo(ctx context.Context, s *Scene, rect geom.Rect, opts Options) ([]view.Snapshot, bool, error) {
	key := r.Keyer.FramesKey(s.Hash, rect)

	var frames []view.Snapshot
	if r.lookup(ctx, key, keyTypeFrames, opts, &frames) {
		return frames, true, nil
	}

	s.Root.SetFrame(rect)
	frames = view.Snapshots(s.Root)
	r.store(ctx, key, keyTypeFrames, opts, frames)
	return frames, false, nil
}

// Apply is ApplyWithCacheInfo without the cache hit flag.
func (r *Runner) Apply(ctx context.Context, s *Scene, rect geom.Rect, opts Options) ([]view.Snapshot, error) {
	frames, _, err := r.ApplyWithCacheInfo(ctx, s, rect, opts)
	return frames, err
}

// Export renders doc in format. Exports are not cached: they are derived
// from cached frames and cheap to produce.
func (r *Runner) Export(ctx context.Context, doc export.Document, format string, opts export.Options) (data []byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, format)
	start := time.Now()
	defer func() { hooks.OnExportComplete(ctx, format, time.Since(start), err) }()

	return export.Render(ctx, doc, format, opts)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup decodes a cached entry into v. Read failures and undecodable
// entries count as misses.
func (r *Runner) lookup(ctx context.Context, key, keyType string, opts Options, v any) bool {
	if opts.Refresh {
		return false
	}
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.logger(opts).Warn("cache read failed", "key", key, "err", err)
	}
	if ok && err == nil && json.Unmarshal(data, v) == nil {
		observability.Cache().OnCacheHit(ctx, keyType)
		return true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return false
}

func (r *Runner) store(ctx context.Context, key, keyType string, opts Options, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.logger(opts).Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
