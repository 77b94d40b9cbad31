package xcm

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chain-sync/core/document"
	"chain-sync/core/jsonio"
	"chain-sync/core/merge"
	"chain-sync/core/sync"

	"go.uber.org/zap"
)

const (
	overlayFile        = "overlay-xcm.json"
	overlayDynamicFile = "overlay-xcm-dynamic.json"
)

// SectionRules declares how each named section of a cross-chain message
// document merges. The output contains exactly these sections, in this
// order.
var SectionRules = []merge.SectionRule{
	{Name: "assetsLocation", Strategy: merge.OverlayWins},
	{Name: "instructions", Strategy: merge.BasePassthrough},
	{Name: "networkDeliveryFee", Strategy: merge.OverlayWins},
	{Name: "networkBaseWeight", Strategy: merge.OverlayWins},
	{Name: "chains", Strategy: merge.CollectionMerge},
}

// Resource merges cross-chain message section documents.
type Resource struct{}

// New creates the xcm resource.
func New() *Resource {
	return &Resource{}
}

// Name returns the resource family name.
func (r *Resource) Name() string { return "xcm" }

// Sync merges every JSON document under each version directory, pairing
// files whose name mentions "dynamic" with the dynamic overlay, then
// copies root-level documents through verbatim.
func (r *Resource) Sync(ctx context.Context, rt *sync.Runtime) []sync.Outcome {
	static, out := loadOverlayDoc(rt, overlayFile)
	if out != nil {
		return []sync.Outcome{*out}
	}
	dynamic, out := loadOverlayDoc(rt, overlayDynamicFile)
	if out != nil {
		return []sync.Outcome{*out}
	}

	versions, err := rt.SelectVersions(filepath.Join(rt.Base, "xcm"))
	if err != nil {
		return []sync.Outcome{{Resource: "xcm", Status: sync.StatusFailed, Reason: err.Error()}}
	}

	var outs []sync.Outcome

	for _, version := range versions {
		versionDir := filepath.Join(rt.Base, "xcm", version)
		names, err := jsonNames(versionDir)
		if err != nil {
			outs = append(outs, sync.Outcome{Resource: filepath.Join("xcm", version), Status: sync.StatusFailed, Reason: err.Error()})
			continue
		}

		for _, name := range names {
			resource := filepath.Join("xcm", version, name)

			base, err := jsonio.LoadDocument(filepath.Join(versionDir, name))
			if err != nil {
				outs = append(outs, sync.Outcome{Resource: resource, Status: sync.StatusFailed, Reason: err.Error()})
				continue
			}

			overlay := static
			if strings.Contains(name, "dynamic") {
				overlay = dynamic
			}

			merged, err := merge.Documents(base, overlay, SectionRules)
			if err != nil {
				outs = append(outs, sync.Outcome{Resource: resource, Status: sync.StatusFailed, Reason: err.Error()})
				continue
			}

			rt.Log.Info("merged xcm document",
				zap.String("resource", resource),
				zap.Strings("sections", merged.Keys()),
			)
			outs = append(outs, sync.FanOut(rt.Log, merged, filepath.Join(rt.Output, "xcm", version, name))...)
		}
	}

	// Root-level documents are not versioned and carry no overlay.
	outs = append(outs, r.copyRootDocuments(rt)...)

	return outs
}

// copyRootDocuments copies <base>/xcm/*.json through verbatim.
func (r *Resource) copyRootDocuments(rt *sync.Runtime) []sync.Outcome {
	names, err := jsonNames(filepath.Join(rt.Base, "xcm"))
	if err != nil {
		return []sync.Outcome{{Resource: "xcm", Status: sync.StatusFailed, Reason: err.Error()}}
	}

	var outs []sync.Outcome
	for _, name := range names {
		dst := filepath.Join(rt.Output, "xcm", name)
		if err := sync.CopyFile(filepath.Join(rt.Base, "xcm", name), dst); err != nil {
			outs = append(outs, sync.Outcome{Resource: dst, Status: sync.StatusFailed, Reason: err.Error()})
			continue
		}
		outs = append(outs, sync.Outcome{Resource: dst, Status: sync.StatusMerged})
	}
	return outs
}

// jsonNames lists the JSON file names directly inside dir, sorted. A
// missing dir yields an empty list.
func jsonNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// loadOverlayDoc reads one overlay document; missing means empty.
func loadOverlayDoc(rt *sync.Runtime, name string) (*document.Object, *sync.Outcome) {
	path := filepath.Join(rt.Overlay, "xcm", name)
	doc, err := jsonio.LoadDocument(path)
	if err != nil {
		if jsonio.IsNotExist(err) {
			return document.New(), nil
		}
		return nil, &sync.Outcome{Resource: "xcm", Status: sync.StatusFailed, Reason: err.Error()}
	}
	return doc, nil
}
