package fixer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

// Option configures a DataFixer at construction time, mirroring
// fixer.Option/WithX in the teacher's own fixer package.
type Option func(*config)

type config struct {
	logger     Logger
	maxWorkers int
}

func defaultConfig() *config {
	return &config{logger: NopLogger{}, maxWorkers: 0}
}

// WithLogger sets the Logger threaded into every DataFix.Apply call via
// Context. The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxWorkers bounds the goroutine concurrency UpdateAll uses. A
// value <= 0 means unbounded (errgroup.SetLimit is not called).
func WithMaxWorkers(n int) Option {
	return func(c *config) { c.maxWorkers = n }
}

// DataFixer is the planner and driver described in spec §4.7: it folds
// the fixes registered for a TaggedDynamic's type over its value across
// a version range. A single instance is safe for concurrent Update
// calls (spec §4.7 "Concurrency contract").
type DataFixer[T any] struct {
	currentVersion typereg.DataVersion
	schemas        *typereg.SchemaRegistry
	fixes          *FixRegistrar[T]
	cfg            *config
}

// CurrentVersion returns the version this DataFixer was constructed
// with (spec §4.7: "DataFixer.current_version() → DataVersion").
func (f *DataFixer[T]) CurrentVersion() typereg.DataVersion { return f.currentVersion }

// Schemas returns the SchemaRegistry this DataFixer was built from.
func (f *DataFixer[T]) Schemas() *typereg.SchemaRegistry { return f.schemas }

// Update applies every applicable registered fix to tagged.Value,
// folding left-to-right, and returns a new TaggedDynamic at the target
// version (spec §4.7).
func (f *DataFixer[T]) Update(tagged dynamic.TaggedDynamic[T], from, to typereg.DataVersion) dynamic.TaggedDynamic[T] {
	ctx := newContext(f.cfg.logger, "datafixer.update", tagged.Type)

	if !from.Less(to) {
		if to.Less(from) {
			ctx.Warn("update called with from=%s > to=%s; returning unchanged", from, to)
		}
		return tagged
	}

	applicable := f.applicableFixes(tagged.Type, from, to)
	value := tagged.Value
	for _, fix := range applicable {
		fixCtx := newContext(f.cfg.logger, fix.Name(), tagged.Type)
		value = fix.Apply(tagged.Type, value, fixCtx)
	}
	return dynamic.NewTaggedDynamic(tagged.Type, value)
}

// PreviewResult is the dry-run counterpart of Update's return value: the
// value Update would have produced, plus which fixes would have run and
// in what order (spec §4 SUPPLEMENTED FEATURES: "dry-run preview").
type PreviewResult[T any] struct {
	Result       dynamic.TaggedDynamic[T]
	AppliedFixes []string
}

// Preview computes what Update(tagged, from, to) would return, without
// any side effect beyond what DataFix.Apply itself performs (DataFix
// implementations are required to be pure, so Preview and Update share
// one code path) — it additionally reports which fixes ran, for tooling
// that wants to explain a migration before committing to it.
func (f *DataFixer[T]) Preview(tagged dynamic.TaggedDynamic[T], from, to typereg.DataVersion) PreviewResult[T] {
	if !from.Less(to) {
		return PreviewResult[T]{Result: tagged}
	}
	applicable := f.applicableFixes(tagged.Type, from, to)
	names := make([]string, len(applicable))
	value := tagged.Value
	for i, fix := range applicable {
		names[i] = fix.Name()
		fixCtx := newContext(f.cfg.logger, fix.Name(), tagged.Type)
		value = fix.Apply(tagged.Type, value, fixCtx)
	}
	return PreviewResult[T]{
		Result:       dynamic.NewTaggedDynamic(tagged.Type, value),
		AppliedFixes: names,
	}
}

// applicableFixes implements spec §4.7 steps 2-4: fixes registered for
// typ whose range falls within [from, to], sorted by (fromVersion,
// registration order).
func (f *DataFixer[T]) applicableFixes(typ typereg.TypeReference, from, to typereg.DataVersion) []DataFix[T] {
	all := f.fixes.Get(typ)
	out := make([]DataFix[T], 0, len(all))
	for _, fix := range all {
		if from.Compare(fix.FromVersion()) > 0 {
			continue // from > fix.FromVersion: fix starts before the range we're migrating
		}
		if fix.ToVersion().Compare(to) > 0 {
			continue // fix.ToVersion > to: fix ends after the range we're migrating
		}
		if !fix.FromVersion().Less(fix.ToVersion()) {
			continue
		}
		out = append(out, fix)
	}
	return out
}

// UpdateAll runs Update for every entry in batch concurrently, bounded
// by WithMaxWorkers if set, fanning out with golang.org/x/sync/errgroup
// (spec §5: "a single DataFixer instance is safe for concurrent update
// calls"). The returned slice preserves batch's order; ctx cancellation
// aborts remaining work.
func (f *DataFixer[T]) UpdateAll(ctx context.Context, batch []dynamic.TaggedDynamic[T], from, to typereg.DataVersion) ([]dynamic.TaggedDynamic[T], error) {
	out := make([]dynamic.TaggedDynamic[T], len(batch))
	g, gctx := errgroup.WithContext(ctx)
	if f.cfg.maxWorkers > 0 {
		g.SetLimit(f.cfg.maxWorkers)
	}
	for i, item := range batch {
		i, item := i, item
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			out[i] = f.Update(item, from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
