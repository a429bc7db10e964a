package pipeline

import (
	"encoding/json"

	"loupe/internal/semantic"
)

type spanRecord struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type referenceRecord struct {
	ID    uint32     `json:"id"`
	Span  spanRecord `json:"span"`
	Flags string     `json:"flags"`
}

type symbolRecord struct {
	ID                 uint32            `json:"id"`
	Span               spanRecord        `json:"span"`
	Name               string            `json:"name"`
	Flags              string            `json:"flags"`
	ScopeID            uint32            `json:"scopeId"`
	ResolvedReferences []uint32          `json:"resolvedReferences"`
	References         []referenceRecord `json:"references"`
}

// projectSymbols renders every symbol in creation order with its resolved
// references. The shape is well-formed by construction; the only failure
// mode is the encoder itself.
func projectSymbols(sc *semantic.Scoping) (string, error) {
	records := make([]symbolRecord, 0, sc.SymbolCount())
	for _, sym := range sc.Symbols() {
		rec := symbolRecord{
			ID:                 uint32(sym.ID),
			Span:               spanRecord{Start: sym.Span.Start, End: sym.Span.End},
			Name:               sym.Name,
			Flags:              sym.Flags.String(),
			ScopeID:            uint32(sym.Scope),
			ResolvedReferences: make([]uint32, 0, len(sym.Refs)),
			References:         make([]referenceRecord, 0, len(sym.Refs)),
		}
		for _, id := range sym.Refs {
			ref := sc.Ref(id)
			rec.ResolvedReferences = append(rec.ResolvedReferences, uint32(id))
			rec.References = append(rec.References, referenceRecord{
				ID:    uint32(ref.ID),
				Span:  spanRecord{Start: ref.Span.Start, End: ref.Span.End},
				Flags: ref.Flags.String(),
			})
		}
		records = append(records, rec)
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
