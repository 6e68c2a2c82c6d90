// Package dynjson implements dynamic.Ops[any] over plain Go values shaped
// the way encoding/json decodes them: map[string]any, []any, string,
// bool, json.Number, and nil.
//
// Two adapters are provided. Ops is the default, encoding/json-backed
// adapter. FastOps swaps the encode/decode path for
// github.com/segmentio/encoding/json, used by rules.ApplyJSON (spec §4.5.4)
// to fuse a scripted batch of edits into a single backend encode/decode
// cycle.
package dynjson
