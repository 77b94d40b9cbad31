package icons

import (
	"context"
	"os"
	"path/filepath"

	"chain-sync/core/sync"

	"go.uber.org/zap"
)

// Resource overlays icon file trees. No JSON parsing is involved: icons
// are opaque assets copied by relative path.
type Resource struct{}

// New creates the icons resource.
func New() *Resource {
	return &Resource{}
}

// Name returns the resource family name.
func (r *Resource) Name() string { return "icons" }

// Sync merges the icon trees in two explicit passes: base files are
// copied only where the output lacks the relative path, then overlay
// files are copied unconditionally. The overlay always wins a path
// collision regardless of traversal order.
func (r *Resource) Sync(ctx context.Context, rt *sync.Runtime) []sync.Outcome {
	baseDir := filepath.Join(rt.Base, "icons")
	overlayDir := filepath.Join(rt.Overlay, "icons")
	outDir := filepath.Join(rt.Output, "icons")

	baseFiles, err := sync.ListFiles(baseDir)
	if err != nil {
		return []sync.Outcome{{Resource: "icons", Status: sync.StatusFailed, Reason: err.Error()}}
	}
	overlayFiles, err := sync.ListFiles(overlayDir)
	if err != nil {
		return []sync.Outcome{{Resource: "icons", Status: sync.StatusFailed, Reason: err.Error()}}
	}

	if len(baseFiles) == 0 && len(overlayFiles) == 0 {
		return []sync.Outcome{{Resource: "icons", Status: sync.StatusSkipped, Reason: "no icon trees found"}}
	}

	var outs []sync.Outcome
	copied := 0

	// Pass 1: base files, keeping anything already in the output.
	for _, rel := range baseFiles {
		dst := filepath.Join(outDir, rel)
		if _, err := os.Stat(dst); err == nil {
			continue
		}
		if err := sync.CopyFile(filepath.Join(baseDir, rel), dst); err != nil {
			outs = append(outs, sync.Outcome{Resource: dst, Status: sync.StatusFailed, Reason: err.Error()})
			continue
		}
		copied++
	}

	// Pass 2: overlay files, overwriting on collision.
	for _, rel := range overlayFiles {
		dst := filepath.Join(outDir, rel)
		if err := sync.CopyFile(filepath.Join(overlayDir, rel), dst); err != nil {
			outs = append(outs, sync.Outcome{Resource: dst, Status: sync.StatusFailed, Reason: err.Error()})
			continue
		}
		rt.Log.Debug("overlay icon applied", zap.String("path", rel))
		copied++
	}

	rt.Log.Info("icon trees merged",
		zap.Int("base", len(baseFiles)),
		zap.Int("overlay", len(overlayFiles)),
		zap.Int("copied", copied),
	)

	outs = append(outs, sync.Outcome{Resource: "icons", Status: sync.StatusMerged})
	return outs
}
