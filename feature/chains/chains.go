package chains

import (
	"context"
	"os"
	"path/filepath"

	"chain-sync/core/jsonio"
	"chain-sync/core/merge"
	"chain-sync/core/sync"

	"go.uber.org/zap"
)

const (
	overlayFile      = "overlay-chains.json"
	mainFile         = "chains.json"
	devFile          = "chains_dev.json"
	androidDir       = "android"
	preConfiguredDir = "preConfigured"
)

// Resource merges chain list files for every discovered version.
type Resource struct{}

// New creates the chains resource.
func New() *Resource {
	return &Resource{}
}

// Name returns the resource family name.
func (r *Resource) Name() string { return "chains" }

// Sync merges chains.json (and chains_dev.json where present) for each
// version, fanning the main list out to the android compatibility path
// and a root-level compatibility copy.
func (r *Resource) Sync(ctx context.Context, rt *sync.Runtime) []sync.Outcome {
	overlay, out := loadOverlay(rt)
	if out != nil {
		return []sync.Outcome{*out}
	}

	versions, err := rt.SelectVersions(filepath.Join(rt.Base, "chains"))
	if err != nil {
		return []sync.Outcome{{Resource: "chains", Status: sync.StatusFailed, Reason: err.Error()}}
	}

	var outs []sync.Outcome
	var latestMain merge.Collection

	for _, version := range versions {
		versionDir := filepath.Join(rt.Base, "chains", version)
		outputDir := filepath.Join(rt.Output, "chains", version)

		// chains.json: falls back to the root-level base file when the
		// version-specific one is absent.
		merged, outcome := r.mergeOne(rt, overlay, version, mainFile, true)
		if outcome != nil {
			outs = append(outs, *outcome)
		} else {
			dests := []string{
				filepath.Join(outputDir, mainFile),
				filepath.Join(outputDir, androidDir, mainFile),
			}
			outs = append(outs, sync.FanOut(rt.Log, merged, dests...)...)
			latestMain = merged
		}

		// chains_dev.json is optional per version; absent means absent.
		if _, err := os.Stat(filepath.Join(versionDir, devFile)); err == nil {
			mergedDev, outcome := r.mergeOne(rt, overlay, version, devFile, false)
			if outcome != nil {
				outs = append(outs, *outcome)
			} else {
				outs = append(outs, sync.FanOut(rt.Log, mergedDev, filepath.Join(outputDir, devFile))...)
			}
		}

		// preConfigured passthrough, replaced wholesale from the base.
		preSrc := filepath.Join(versionDir, preConfiguredDir)
		if _, err := os.Stat(preSrc); err == nil {
			preDst := filepath.Join(outputDir, preConfiguredDir)
			if err := sync.ReplaceTree(preSrc, preDst); err != nil {
				outs = append(outs, sync.Outcome{Resource: preDst, Status: sync.StatusFailed, Reason: err.Error()})
			} else {
				outs = append(outs, sync.Outcome{Resource: preDst, Status: sync.StatusMerged})
			}
		}
	}

	// Root-level compatibility copy from the newest processed version.
	if latestMain != nil {
		outs = append(outs, sync.FanOut(rt.Log, latestMain, filepath.Join(rt.Output, "chains", mainFile))...)
	}

	return outs
}

// mergeOne loads and merges one chain list file. It returns either the
// merged collection or a terminal outcome for that file.
func (r *Resource) mergeOne(rt *sync.Runtime, overlay merge.Collection, version, name string, rootFallback bool) (merge.Collection, *sync.Outcome) {
	resource := filepath.Join("chains", version, name)
	basePath := filepath.Join(rt.Base, "chains", version, name)

	base, err := jsonio.LoadCollection(basePath)
	if jsonio.IsNotExist(err) && rootFallback {
		basePath = filepath.Join(rt.Base, "chains", name)
		base, err = jsonio.LoadCollection(basePath)
	}
	if err != nil {
		if jsonio.IsNotExist(err) {
			return nil, &sync.Outcome{Resource: resource, Status: sync.StatusSkipped, Reason: "base file not found"}
		}
		return nil, &sync.Outcome{Resource: resource, Status: sync.StatusFailed, Reason: err.Error()}
	}

	if !rt.Opts.IncludeExcluded {
		var report merge.FilterReport
		base, report = rt.Rules.Filter(base)
		if report.Total() > 0 {
			rt.Log.Info("excluded base entries",
				zap.String("resource", resource),
				zap.Int("kept", report.Kept),
				zap.Int("excluded", report.Total()),
				zap.Any("by_reason", report.Counts),
			)
			for _, ex := range report.Excluded {
				rt.Log.Debug("excluded entry",
					zap.String("name", ex.Name),
					zap.String("reason", string(ex.Reason)),
				)
			}
		}
	}

	merged := merge.Collections(base, overlay)
	rt.Log.Info("merged chain list",
		zap.String("resource", resource),
		zap.Int("overlay", len(overlay)),
		zap.Int("base", len(merged)-len(overlay)),
		zap.Int("total", len(merged)),
	)
	return merged, nil
}

// loadOverlay reads the curated overlay list. A missing overlay file is
// an empty overlay; a corrupt one fails the whole family, since every
// version merge depends on it.
func loadOverlay(rt *sync.Runtime) (merge.Collection, *sync.Outcome) {
	path := filepath.Join(rt.Overlay, "chains", overlayFile)
	overlay, err := jsonio.LoadCollection(path)
	if err != nil {
		if jsonio.IsNotExist(err) {
			rt.Log.Debug("no chains overlay, using base only", zap.String("path", path))
			return nil, nil
		}
		return nil, &sync.Outcome{Resource: "chains", Status: sync.StatusFailed, Reason: err.Error()}
	}
	return overlay, nil
}
