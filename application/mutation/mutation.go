// Package mutation applies entry mutations to bundle modules.
//
// An EntriesMutation selects a subset of a module's entries, transforms that
// subset and hands back a replacement module. Entries the selector does not
// match pass through untouched and keep their relative order.
package mutation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
	"golang.org/x/sync/errgroup"
)

// EntriesMutation is a selector, a transform over the selected entries and an
// applicability check. New mutations are new values of this struct.
type EntriesMutation struct {
	// Select reports whether an entry belongs to the transformed subset.
	Select func(entities.ModuleEntry) bool

	// Transform maps the selected entries, in module order, to their
	// replacements. It may drop entries but must not add any.
	Transform func([]entities.ModuleEntry) ([]entities.ModuleEntry, error)

	// Applicable reports whether the mutation runs for a module at all.
	// A nil Applicable means always.
	Applicable func(*entities.BundleModule) bool

	// Name identifies the mutation in logs and errors.
	Name string
}

// Apply runs m against module. When m is not applicable the module itself is
// returned. On success the result holds the unmatched entries in their
// original order followed by the transformed entries in transform order.
// Failures are returned as *errors.MutationError and leave module unchanged.
func Apply(ctx context.Context, module *entities.BundleModule, m EntriesMutation) (*entities.BundleModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if module == nil {
		return nil, &errors.MutationError{Mutation: m.Name, Err: fmt.Errorf("module is nil")}
	}
	if m.Select == nil || m.Transform == nil {
		return nil, &errors.MutationError{
			Mutation: m.Name,
			Module:   module.Name,
			Err:      fmt.Errorf("mutation needs both a selector and a transform"),
		}
	}
	if m.Applicable != nil && !m.Applicable(module) {
		slog.DebugContext(ctx, "mutation not applicable", "mutation", m.Name, "module", module.Name)
		return module, nil
	}

	var matched, unmatched []entities.ModuleEntry
	for _, e := range module.Entries {
		if m.Select(e) {
			matched = append(matched, e)
		} else {
			unmatched = append(unmatched, e)
		}
	}
	slog.DebugContext(ctx, "applying mutation",
		"mutation", m.Name, "module", module.Name,
		"matched", len(matched), "unmatched", len(unmatched))

	if len(matched) == 0 {
		return module, nil
	}

	transformed, err := m.Transform(matched)
	if err != nil {
		return nil, &errors.MutationError{Mutation: m.Name, Module: module.Name, Err: err}
	}
	if len(transformed) > len(matched) {
		return nil, &errors.MutationError{
			Mutation: m.Name,
			Module:   module.Name,
			Err:      &errors.EntryConservationError{Input: len(matched), Output: len(transformed)},
		}
	}

	if dup, ok := firstCollision(unmatched, transformed); ok {
		return nil, &errors.MutationError{
			Mutation: m.Name,
			Module:   module.Name,
			Err:      &errors.EntryConservationError{DuplicatePath: dup},
		}
	}

	entries := make([]entities.ModuleEntry, 0, len(unmatched)+len(transformed))
	entries = append(entries, unmatched...)
	entries = append(entries, transformed...)
	return module.WithEntries(entries), nil
}

// ApplyAll runs m against every module concurrently, at most parallelism at a
// time (non-positive means unbounded). Results keep the order of modules. The
// first failure cancels the remaining work and is returned.
func ApplyAll(ctx context.Context, modules []*entities.BundleModule, m EntriesMutation, parallelism int) ([]*entities.BundleModule, error) {
	out := make([]*entities.BundleModule, len(modules))
	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, module := range modules {
		g.Go(func() error {
			res, err := Apply(gctx, module, m)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Chain applies mutations in order, feeding each the previous result.
func Chain(ctx context.Context, module *entities.BundleModule, mutations ...EntriesMutation) (*entities.BundleModule, error) {
	current := module
	for _, m := range mutations {
		next, err := Apply(ctx, current, m)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// firstCollision returns the first transformed path that repeats another
// transformed path or lands on an untouched entry.
func firstCollision(unmatched, transformed []entities.ModuleEntry) (string, bool) {
	seen := make(map[string]struct{}, len(unmatched)+len(transformed))
	for _, e := range unmatched {
		seen[e.Path.String()] = struct{}{}
	}
	for _, e := range transformed {
		p := e.Path.String()
		if _, ok := seen[p]; ok {
			return p, true
		}
		seen[p] = struct{}{}
	}
	return "", false
}
