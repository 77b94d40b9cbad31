package merge_test

import (
	"encoding/json"
	"testing"

	"chain-sync/core/document"
	"chain-sync/core/merge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRulesDoc = []merge.SectionRule{
	{Name: "assetsLocation", Strategy: merge.OverlayWins},
	{Name: "instructions", Strategy: merge.BasePassthrough},
	{Name: "networkDeliveryFee", Strategy: merge.OverlayWins},
	{Name: "chains", Strategy: merge.CollectionMerge},
}

func mustDocument(t *testing.T, src string) *document.Object {
	t.Helper()
	var obj document.Object
	require.NoError(t, json.Unmarshal([]byte(src), &obj))
	return &obj
}

func sectionString(t *testing.T, doc *document.Object, name string) string {
	t.Helper()
	raw, ok := doc.Get(name)
	require.True(t, ok, "section %q missing", name)
	compact, err := json.Marshal(json.RawMessage(raw))
	require.NoError(t, err)
	return string(compact)
}

func TestDocuments_OverlayWinsUnionsKeys(t *testing.T) {
	base := mustDocument(t, `{"networkDeliveryFee":{"1":"100"}}`)
	overlay := mustDocument(t, `{"networkDeliveryFee":{"2":"50"}}`)

	merged, err := merge.Documents(base, overlay, testRulesDoc)
	require.NoError(t, err)

	assert.Equal(t, `{"1":"100","2":"50"}`, sectionString(t, merged, "networkDeliveryFee"))
}

func TestDocuments_OverlayReplacesSharedKeyWholesale(t *testing.T) {
	base := mustDocument(t, `{"assetsLocation":{"DOT":{"chainId":"a","path":"old"}}}`)
	overlay := mustDocument(t, `{"assetsLocation":{"DOT":{"chainId":"b"}}}`)

	merged, err := merge.Documents(base, overlay, testRulesDoc)
	require.NoError(t, err)

	// Shallow replace: the base's "path" field must not survive.
	assert.Equal(t, `{"DOT":{"chainId":"b"}}`, sectionString(t, merged, "assetsLocation"))
}

func TestDocuments_BasePassthrough(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		want    string
		absent  bool
	}{
		{
			name:    "Base only kept verbatim",
			base:    `{"instructions":{"V2":["WithdrawAsset"]}}`,
			overlay: `{}`,
			want:    `{"V2":["WithdrawAsset"]}`,
		},
		{
			name:    "Overlay only stays absent",
			base:    `{}`,
			overlay: `{"instructions":{"V2":["Custom"]}}`,
			absent:  true,
		},
		{
			name:    "Both defined shallow merges",
			base:    `{"instructions":{"V2":["WithdrawAsset"]}}`,
			overlay: `{"instructions":{"V3":["Custom"]}}`,
			want:    `{"V2":["WithdrawAsset"],"V3":["Custom"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := merge.Documents(mustDocument(t, tt.base), mustDocument(t, tt.overlay), testRulesDoc)
			require.NoError(t, err)

			raw, ok := merged.Get("instructions")
			if tt.absent {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			compact, err := json.Marshal(json.RawMessage(raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(compact))
		})
	}
}

func TestDocuments_CollectionSectionAlwaysEmitted(t *testing.T) {
	merged, err := merge.Documents(mustDocument(t, `{}`), mustDocument(t, `{}`), testRulesDoc)
	require.NoError(t, err)

	assert.Equal(t, `[]`, sectionString(t, merged, "chains"))
	_, ok := merged.Get("networkDeliveryFee")
	assert.False(t, ok, "absent map section must not be synthesized")
}

func TestDocuments_CollectionSectionMergesOverlayFirst(t *testing.T) {
	base := mustDocument(t, `{"chains":[{"chainId":"1","name":"Base One"},{"chainId":"2","name":"Base Two"}]}`)
	overlay := mustDocument(t, `{"chains":[{"chainId":"2","name":"Overlay Two"},{"chainId":"9","name":"Overlay Nine"}]}`)

	merged, err := merge.Documents(base, overlay, testRulesDoc)
	require.NoError(t, err)

	raw, ok := merged.Get("chains")
	require.True(t, ok)
	var chains merge.Collection
	require.NoError(t, json.Unmarshal(raw, &chains))

	assert.Equal(t, []string{"2", "9", "1"}, chains.IDs())
	assert.Equal(t, "Overlay Two", chains[0].Name)
}

func TestDocuments_UndeclaredSectionsDropped(t *testing.T) {
	base := mustDocument(t, `{"legacy":{"a":1},"networkDeliveryFee":{"1":"100"}}`)

	merged, err := merge.Documents(base, nil, testRulesDoc)
	require.NoError(t, err)

	_, ok := merged.Get("legacy")
	assert.False(t, ok)
}

func TestDocuments_SectionOrderFollowsRules(t *testing.T) {
	base := mustDocument(t, `{"chains":[],"networkDeliveryFee":{"1":"100"},"assetsLocation":{"DOT":{}}}`)

	merged, err := merge.Documents(base, nil, testRulesDoc)
	require.NoError(t, err)

	assert.Equal(t, []string{"assetsLocation", "networkDeliveryFee", "chains"}, merged.Keys())
}

func TestDocuments_NilInputs(t *testing.T) {
	merged, err := merge.Documents(nil, nil, testRulesDoc)
	require.NoError(t, err)
	assert.Equal(t, []string{"chains"}, merged.Keys())
}

func TestDocuments_MalformedSection(t *testing.T) {
	base := mustDocument(t, `{"networkDeliveryFee":"not-an-object"}`)

	_, err := merge.Documents(base, nil, testRulesDoc)
	assert.Error(t, err)
}

func TestShallowObjects(t *testing.T) {
	base := mustDocument(t, `{"a":1,"b":{"x":1}}`)
	overlay := mustDocument(t, `{"b":{"y":2},"c":3}`)

	merged := merge.ShallowObjects(base, overlay)
	out, err := json.Marshal(merged)
	require.NoError(t, err)

	// Shallow: overlay's "b" replaces base's entirely.
	assert.Equal(t, `{"a":1,"b":{"y":2},"c":3}`, string(out))
}

func TestDeepObjects_OneLevelNestedMerge(t *testing.T) {
	base := mustDocument(t, `{"stakingApi":{"polkadot":"https://base.example/dot","kusama":"https://base.example/ksm"},"multisig":"https://base.example/ms"}`)
	overlay := mustDocument(t, `{"stakingApi":{"polkadot":"https://overlay.example/dot","local":"https://overlay.example/local"}}`)

	merged := merge.DeepObjects(base, overlay)
	out, err := json.Marshal(merged)
	require.NoError(t, err)

	assert.Equal(t,
		`{"stakingApi":{"polkadot":"https://overlay.example/dot","kusama":"https://base.example/ksm","local":"https://overlay.example/local"},"multisig":"https://base.example/ms"}`,
		string(out))
}

func TestDeepObjects_ScalarReplaced(t *testing.T) {
	base := mustDocument(t, `{"a":{"x":1},"b":1}`)
	overlay := mustDocument(t, `{"a":"scalar","b":{"y":2}}`)

	merged := merge.DeepObjects(base, overlay)
	out, err := json.Marshal(merged)
	require.NoError(t, err)

	// Mixed types on either side replace wholesale.
	assert.Equal(t, `{"a":"scalar","b":{"y":2}}`, string(out))
}

func TestDeepObjects_DoesNotMutateBase(t *testing.T) {
	base := mustDocument(t, `{"a":{"x":1}}`)
	overlay := mustDocument(t, `{"a":{"y":2}}`)

	_ = merge.DeepObjects(base, overlay)

	out, err := json.Marshal(base)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"x":1}}`, string(out))
}
