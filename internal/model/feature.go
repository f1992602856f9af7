package model

// FeatureRecord is one fixed-shape feature row ready for tensor batching.
// Every channel slice has length exactly max_seq_length. Exactly one of
// LabelID/LabelValue is meaningful, selected by the task's OutputMode.
type FeatureRecord struct {
	GUID   string   `json:"guid"`
	Tokens []string `json:"tokens,omitempty"` // packed token strings, pre-padding (debugging aid)

	InputIDs   []int64 `json:"input_ids"`
	InputMask  []int64 `json:"input_mask"`
	SegmentIDs []int64 `json:"segment_ids"`

	// EntityMask tags every position covered by either marked entity span
	// with a single shared sentinel, for mention pooling.
	EntityMask []int64 `json:"entity_mask,omitempty"`

	// EntitySegPos carries the boundary span-tagging variant: one sentinel
	// on every start-marker position, another on every end-marker position.
	EntitySegPos []int64 `json:"entity_seg_pos,omitempty"`

	// EntitySpan1Pos and EntitySpan2Pos are signed token offsets relative to
	// each entity: negative before the span, zero inside, positive after.
	EntitySpan1Pos []int64 `json:"entity_span1_pos,omitempty"`
	EntitySpan2Pos []int64 `json:"entity_span2_pos,omitempty"`

	LabelID    int64   `json:"label_id"`
	LabelValue float64 `json:"label_value,omitempty"`
}
