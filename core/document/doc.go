// Package document provides an insertion-ordered JSON object.
//
// The merge pipeline must write files whose object keys appear in the
// same order they were read (or inserted by a merge), because downstream
// clients treat key order as display order. The standard library sorts
// map keys on marshal, so this package keeps objects as an ordered key
// list over raw JSON values.
//
// # Usage
//
//	var obj document.Object
//	_ = json.Unmarshal(data, &obj)
//	obj.Set("newKey", json.RawMessage(`"value"`))
//	out, _ := json.Marshal(&obj) // keys in original + insertion order
package document
