package unit

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// Id allocation must stay dense regardless of how creations are sliced into
// batches: after any sequence of successful creates the ids are exactly
// 1..N with no gaps and no reuse.
func TestMaterialIDAllocationIsGapFree(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		modules := newLedger(t)
		ctx := context.Background()
		grantMinter(t, modules, "brand")

		numBatches := rapid.IntRange(1, 6).Draw(r, "numBatches")
		next := uint64(1)
		for b := 0; b < numBatches; b++ {
			size := rapid.IntRange(1, 8).Draw(r, fmt.Sprintf("batch%dSize", b))
			uris := make([]string, 0, size)
			for i := 0; i < size; i++ {
				uris = append(uris, fmt.Sprintf("ipfs://material-%d-%d", b, i))
			}

			ids, err := modules.Factory.Service.CreateNewMaterials(ctx, "brand", uris)
			if err != nil {
				r.Fatalf("create batch %d: %v", b, err)
			}
			for _, id := range ids {
				if id != next {
					r.Fatalf("expected id %d, got %d", next, id)
				}
				next++
			}
		}
	})
}
