package relprep

type options struct {
	vocabPath    string
	labels       []string
	maxSeqLength int
	outputMode   string
	markers      [4]string
	workers      int
}

// Option configures a Preparer.
type Option func(*options)

// WithVocabPath sets the WordPiece vocabulary file. Required.
func WithVocabPath(path string) Option {
	return func(o *options) {
		o.vocabPath = path
	}
}

// WithLabels sets the relation label set. Label indices follow slice order.
// Default: the SemEval-2010 Task 8 label set.
func WithLabels(labels []string) Option {
	return func(o *options) {
		o.labels = labels
	}
}

// WithMaxSeqLength sets the padded sequence length. Default: 128.
func WithMaxSeqLength(n int) Option {
	return func(o *options) {
		o.maxSeqLength = n
	}
}

// WithOutputMode sets label interpretation: "classification" or
// "regression". Default: "classification".
func WithOutputMode(mode string) Option {
	return func(o *options) {
		o.outputMode = mode
	}
}

// WithMarkers sets the four entity boundary marker tokens in order:
// first-start, first-end, second-start, second-end.
// Default: <s1>, <e1>, <s2>, <e2>.
func WithMarkers(s1, e1, s2, e2 string) Option {
	return func(o *options) {
		o.markers = [4]string{s1, e1, s2, e2}
	}
}

// WithWorkers sets the parallel conversion worker count for PrepareBatch.
// Default: NumCPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func defaultOptions() options {
	return options{
		maxSeqLength: 128,
		outputMode:   "classification",
	}
}
