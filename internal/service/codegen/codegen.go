package codegen

import (
	"context"
	"fmt"
	"math/rand"
)

const codePrefix = "RODO-"

// Generator produces unique human-readable shipment codes, using the
// shipments table as its uniqueness oracle.
//
// There is no reservation or locking: two generators sampling concurrently
// can hand out the same code, and the gateway's upsert will silently
// overwrite on collision. Write rates are human-scale, which keeps the
// window acceptable.
type Generator struct {
	shipments shipmentKeys
	intN      func(n int) int
}

// New creates a Generator over the shipment key source.
func New(shipments shipmentKeys) *Generator {
	return &Generator{shipments: shipments, intN: rand.Intn}
}

// Generate returns a "RODO-" + 5 digit code absent from the shipments table.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	all, err := g.shipments.ListShipments(ctx)
	if err != nil {
		return "", fmt.Errorf("codegen: list shipments: %w", err)
	}

	for {
		code := fmt.Sprintf("%s%d", codePrefix, 10000+g.intN(90000))
		if _, exists := all[code]; !exists {
			return code, nil
		}
	}
}
