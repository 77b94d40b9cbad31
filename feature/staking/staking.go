package staking

import (
	"context"
	"os"
	"path/filepath"

	"chain-sync/core/document"
	"chain-sync/core/jsonio"
	"chain-sync/core/merge"
	"chain-sync/core/sync"

	"go.uber.org/zap"
)

const (
	overlayFile    = "global-config-overlay.json"
	validatorsFile = "nova_validators.json"
	validatorsDir  = "validators"
)

// Resource merges the global staking configuration.
type Resource struct{}

// New creates the staking resource.
func New() *Resource {
	return &Resource{}
}

// Name returns the resource family name.
func (r *Resource) Name() string { return "staking" }

// Sync builds the production and dev global configs. The base is the
// shallow union of the upstream global config and staking config (the
// staking file winning shared keys), the overlay is deep-merged on top.
// Validator files pass through verbatim.
func (r *Resource) Sync(ctx context.Context, rt *sync.Runtime) []sync.Outcome {
	overlay, out := loadOverlay(rt)
	if out != nil {
		return []sync.Outcome{*out}
	}

	var outs []sync.Outcome

	for _, suffix := range []string{"", "_dev"} {
		resource := filepath.Join("staking", "global_config"+suffix+".json")

		base := document.New()
		found := false
		for _, basePath := range []string{
			filepath.Join(rt.Base, "global", "config"+suffix+".json"),
			filepath.Join(rt.Base, "staking", "global_config"+suffix+".json"),
		} {
			doc, err := jsonio.LoadDocument(basePath)
			if err != nil {
				if jsonio.IsNotExist(err) {
					continue
				}
				outs = append(outs, sync.Outcome{Resource: resource, Status: sync.StatusFailed, Reason: err.Error()})
				base = nil
				break
			}
			base = merge.ShallowObjects(base, doc)
			found = true
		}
		if base == nil {
			continue
		}
		if !found {
			outs = append(outs, sync.Outcome{Resource: resource, Status: sync.StatusSkipped, Reason: "base file not found"})
			continue
		}

		merged := merge.DeepObjects(base, overlay)
		rt.Log.Info("merged global config",
			zap.String("resource", resource),
			zap.Strings("keys", merged.Keys()),
		)
		outs = append(outs, sync.FanOut(rt.Log, merged, filepath.Join(rt.Output, "staking", "global_config"+suffix+".json"))...)
	}

	outs = append(outs, r.copyValidators(rt)...)

	return outs
}

// copyValidators carries the upstream validator data through untouched.
func (r *Resource) copyValidators(rt *sync.Runtime) []sync.Outcome {
	var outs []sync.Outcome

	src := filepath.Join(rt.Base, "staking", validatorsFile)
	if _, err := os.Stat(src); err == nil {
		dst := filepath.Join(rt.Output, "staking", validatorsFile)
		if err := sync.CopyFile(src, dst); err != nil {
			outs = append(outs, sync.Outcome{Resource: dst, Status: sync.StatusFailed, Reason: err.Error()})
		} else {
			outs = append(outs, sync.Outcome{Resource: dst, Status: sync.StatusMerged})
		}
	}

	srcDir := filepath.Join(rt.Base, "staking", validatorsDir)
	if _, err := os.Stat(srcDir); err == nil {
		dstDir := filepath.Join(rt.Output, "staking", validatorsDir)
		if err := sync.ReplaceTree(srcDir, dstDir); err != nil {
			outs = append(outs, sync.Outcome{Resource: dstDir, Status: sync.StatusFailed, Reason: err.Error()})
		} else {
			outs = append(outs, sync.Outcome{Resource: dstDir, Status: sync.StatusMerged})
		}
	}

	return outs
}

// loadOverlay reads the staking overrides; missing means empty.
func loadOverlay(rt *sync.Runtime) (*document.Object, *sync.Outcome) {
	path := filepath.Join(rt.Overlay, "config", overlayFile)
	doc, err := jsonio.LoadDocument(path)
	if err != nil {
		if jsonio.IsNotExist(err) {
			return document.New(), nil
		}
		return nil, &sync.Outcome{Resource: "staking", Status: sync.StatusFailed, Reason: err.Error()}
	}
	return doc, nil
}
