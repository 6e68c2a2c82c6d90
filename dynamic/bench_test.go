package dynamic_test

import (
	"testing"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic/dynjson"
)

// BenchmarkGetAtDeepPath measures traversal cost through GetAt/SetAt on a
// moderately nested document, the hot path every rules.Rule exercises on
// every node it visits.
func BenchmarkGetAtDeepPath(b *testing.B) {
	d, err := dynjson.Decode([]byte(`{
		"entity": {
			"stats": {
				"combat": {
					"hp": 20,
					"mp": 5
				}
			}
		}
	}`))
	if err != nil {
		b.Fatalf("decode: %v", err)
	}

	for b.Loop() {
		_ = d.GetAt("entity.stats.combat.hp")
	}
}

// BenchmarkSetAtDeepPath measures the corresponding write path, which must
// rebuild every intermediate map on the way down (Dynamic is immutable).
func BenchmarkSetAtDeepPath(b *testing.B) {
	d, err := dynjson.Decode([]byte(`{
		"entity": {
			"stats": {
				"combat": {
					"hp": 20,
					"mp": 5
				}
			}
		}
	}`))
	if err != nil {
		b.Fatalf("decode: %v", err)
	}
	value := d.CreateLong(30)

	for b.Loop() {
		_ = d.SetAt("entity.stats.combat.hp", value)
	}
}
