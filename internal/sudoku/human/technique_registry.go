// Package human implements the candidate-elimination, human-style Sudoku
// solving engine: board state, peer/unit geometry, chain data structures,
// and the ~24 named deductive techniques dispatched by Solver.
//
// Techniques run in a fixed order (see technique_registry.go); a caller that
// wants to study or restrict the solver can disable individual techniques by
// slug via Solver.SetTechniqueEnabled, which is handy for isolating which
// technique a puzzle actually requires.
package human

import (
	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/internal/sudoku/human/techniques"
)

// TechniqueDescriptor names one entry in the solver's fixed dispatch order.
type TechniqueDescriptor struct {
	Name     string
	Slug     string
	Detector func(b *Board) *core.TechniqueData
	Enabled  bool
}

// TechniqueRegistry holds the solver's techniques in their fixed dispatch
// order. The order itself is never reordered at runtime; only individual
// entries can be toggled on or off.
type TechniqueRegistry struct {
	entries []*TechniqueDescriptor
	bySlug  map[string]*TechniqueDescriptor
}

func boardInterfaceAdapter(f func(techniques.BoardInterface) *core.TechniqueData) func(*Board) *core.TechniqueData {
	return func(b *Board) *core.TechniqueData { return f(b) }
}

// NewTechniqueRegistry builds the registry with every technique enabled, in
// the solver driver's fixed dispatch order.
func NewTechniqueRegistry() *TechniqueRegistry {
	r := &TechniqueRegistry{bySlug: make(map[string]*TechniqueDescriptor)}

	r.add("Naked Single", "naked-single", boardInterfaceAdapter(techniques.DetectNakedSingle))
	r.add("Hidden Single", "hidden-single", boardInterfaceAdapter(techniques.DetectHiddenSingle))
	r.add("Pointing Pair", "pointing-pair", boardInterfaceAdapter(techniques.DetectPointingPair))
	r.add("Pointing Triplet", "pointing-triplet", boardInterfaceAdapter(techniques.DetectPointingTriplet))
	r.add("Naked Pair", "naked-pair", boardInterfaceAdapter(techniques.DetectNakedPair))
	r.add("Hidden Pair", "hidden-pair", boardInterfaceAdapter(techniques.DetectHiddenPair))
	r.add("Naked Triplet", "naked-triplet", boardInterfaceAdapter(techniques.DetectNakedTriplet))
	r.add("Hidden Triplet", "hidden-triplet", boardInterfaceAdapter(techniques.DetectHiddenTriplet))
	r.add("Naked Quad", "naked-quad", boardInterfaceAdapter(techniques.DetectNakedQuad))
	r.add("Hidden Quad", "hidden-quad", boardInterfaceAdapter(techniques.DetectHiddenQuad))
	r.add("Naked Quint", "naked-quint", boardInterfaceAdapter(techniques.DetectNakedQuint))
	r.add("X-Wing", "x-wing", boardInterfaceAdapter(techniques.DetectXWing))
	r.add("Singles Chain Rule 2", "singles-chain-rule-2", DetectSinglesChainRule2)
	r.add("Singles Chain Rule 4", "singles-chain-rule-4", DetectSinglesChainRule4)
	r.add("Swordfish", "swordfish", boardInterfaceAdapter(techniques.DetectSwordfish))
	r.add("Y-Wing", "y-wing", DetectYWing)
	r.add("XYZ-Wing", "xyz-wing", DetectXYZWing)
	r.add("Bi-Value Universal Grave", "bi-value-universal-grave", boardInterfaceAdapter(techniques.DetectBUG))
	r.add("XY-Chain", "xy-chain", DetectXYChain)
	r.add("3D Medusa", "3d-medusa", DetectMedusa)
	r.add("Jellyfish", "jellyfish", boardInterfaceAdapter(techniques.DetectJellyfish))
	r.add("Unique Rectangle", "unique-rectangle", boardInterfaceAdapter(techniques.DetectUniqueRectangle4Combined))
	r.add("X-Cycle", "x-cycle", DetectXCycle)
	r.add("WXYZ-Wing", "wxyz-wing", DetectWXYZWing)

	return r
}

func (r *TechniqueRegistry) add(name, slug string, detector func(*Board) *core.TechniqueData) {
	d := &TechniqueDescriptor{Name: name, Slug: slug, Detector: detector, Enabled: true}
	r.entries = append(r.entries, d)
	r.bySlug[slug] = d
}

// Ordered returns the enabled techniques in fixed dispatch order.
func (r *TechniqueRegistry) Ordered() []*TechniqueDescriptor {
	var out []*TechniqueDescriptor
	for _, d := range r.entries {
		if d.Enabled {
			out = append(out, d)
		}
	}
	return out
}

// SetEnabled toggles a technique by slug; returns false if the slug is unknown.
func (r *TechniqueRegistry) SetEnabled(slug string, enabled bool) bool {
	d, ok := r.bySlug[slug]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// GetBySlug returns the descriptor for a slug, or nil if unknown.
func (r *TechniqueRegistry) GetBySlug(slug string) *TechniqueDescriptor {
	return r.bySlug[slug]
}
