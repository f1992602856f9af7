// Package relprep converts relation-classification examples into
// entity-aware feature records and builds the entity co-occurrence graph
// of a corpus split.
//
// Quick start:
//
//	p, err := relprep.New(relprep.WithVocabPath("models/vocab.txt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rec, _ := p.Prepare(relprep.Example{
//	    GUID:    "train-0",
//	    Text:    "the fire inside the house was caused by a cigarette",
//	    Label:   "Cause-Effect(e2,e1)",
//	    Entity1: relprep.Span{Start: 1, End: 2},
//	    Entity2: relprep.Span{Start: 9, End: 10},
//	})
//	fmt.Println(rec.InputIDs)
//
// The Preparer is safe for concurrent use. Create once, reuse across splits.
package relprep
