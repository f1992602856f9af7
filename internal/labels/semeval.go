package labels

// semEvalLabels is the SemEval-2010 Task 8 relation inventory, in the index
// order used by published checkpoints. Do not reorder.
var semEvalLabels = []string{
	"Message-Topic(e2,e1)",
	"Instrument-Agency(e2,e1)",
	"Entity-Origin(e2,e1)",
	"Member-Collection(e1,e2)",
	"Member-Collection(e2,e1)",
	"Other",
	"Component-Whole(e1,e2)",
	"Product-Producer(e2,e1)",
	"Component-Whole(e2,e1)",
	"Entity-Destination(e2,e1)",
	"Content-Container(e2,e1)",
	"Entity-Destination(e1,e2)",
	"Instrument-Agency(e1,e2)",
	"Cause-Effect(e2,e1)",
	"Entity-Origin(e1,e2)",
	"Product-Producer(e1,e2)",
	"Cause-Effect(e1,e2)",
	"Message-Topic(e1,e2)",
	"Content-Container(e1,e2)",
}

// SemEval returns the built-in SemEval-2010 Task 8 vocabulary.
func SemEval() *Vocabulary {
	v, err := New(semEvalLabels)
	if err != nil {
		panic(err) // static list, cannot fail
	}
	return v
}
