package output

import "github.com/crimson-sun/relprep/internal/model"

// FormatRecord returns a copy of the record with channels stripped
// according to verbosity (dropped slices are nil and omitted from JSON via
// omitempty). At Minimal only the core tensor channels and label survive;
// Standard drops the token strings; Full preserves everything.
func FormatRecord(rec model.FeatureRecord, verbosity Verbosity) model.FeatureRecord {
	if verbosity < Full {
		rec.Tokens = nil
	}
	if verbosity == Minimal {
		rec.EntityMask = nil
		rec.EntitySegPos = nil
		rec.EntitySpan1Pos = nil
		rec.EntitySpan2Pos = nil
	}
	return rec
}
