package relprep

import (
	"github.com/crimson-sun/relprep/internal/graph"
	"github.com/crimson-sun/relprep/internal/model"
)

// Span is a half-open [Start, End) range over whitespace tokens.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Example is a single relation-classification example. Entity spans index
// into the whitespace tokens of Text; Entity1 must not start after Entity2.
type Example struct {
	GUID     string `json:"guid"`
	Text     string `json:"text"`
	TextPair string `json:"text_pair,omitempty"`
	Label    string `json:"label,omitempty"`
	Entity1  Span   `json:"entity1"`
	Entity2  Span   `json:"entity2"`
}

// Record is a fixed-shape feature record ready for model consumption.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Record struct {
	GUID           string   `json:"guid"`
	Tokens         []string `json:"tokens,omitempty"` // marked subword tokens, unpadded
	InputIDs       []int64  `json:"input_ids"`
	InputMask      []int64  `json:"input_mask"`
	SegmentIDs     []int64  `json:"segment_ids"`
	EntityMask     []int64  `json:"entity_mask"`
	EntitySegPos   []int64  `json:"entity_seg_pos"`
	EntitySpan1Pos []int64  `json:"entity_span1_pos"`
	EntitySpan2Pos []int64  `json:"entity_span2_pos"`
	LabelID        int64    `json:"label_id"`
	LabelValue     float64  `json:"label_value,omitempty"`
}

// Graph is the finalized entity co-occurrence structure of a prepared batch.
// Entities, Degree and the Spectral rows share the same index order.
type Graph struct {
	Entities []string    `json:"entities"`
	Degree   []float64   `json:"degree"`
	Spectral [][]float64 `json:"spectral"`
}

func exampleToRaw(ex Example) model.RawExample {
	return model.RawExample{
		GUID:     ex.GUID,
		Text:     ex.Text,
		TextPair: ex.TextPair,
		Label:    ex.Label,
		Entities: [2]model.Span{
			{Start: ex.Entity1.Start, End: ex.Entity1.End},
			{Start: ex.Entity2.Start, End: ex.Entity2.End},
		},
	}
}

func recordFromFeature(rec model.FeatureRecord) Record {
	return Record{
		GUID:           rec.GUID,
		Tokens:         rec.Tokens,
		InputIDs:       rec.InputIDs,
		InputMask:      rec.InputMask,
		SegmentIDs:     rec.SegmentIDs,
		EntityMask:     rec.EntityMask,
		EntitySegPos:   rec.EntitySegPos,
		EntitySpan1Pos: rec.EntitySpan1Pos,
		EntitySpan2Pos: rec.EntitySpan2Pos,
		LabelID:        rec.LabelID,
		LabelValue:     rec.LabelValue,
	}
}

func graphFromInternal(g *graph.Graph) Graph {
	n := g.Spectral.Size()
	spectral := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		copy(row, g.Spectral.Row(i))
		spectral[i] = row
	}
	return Graph{
		Entities: g.Entities,
		Degree:   g.Degree,
		Spectral: spectral,
	}
}
