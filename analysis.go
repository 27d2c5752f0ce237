package ubigkas

// Step records what the reconstructor did with one input token.
type Step struct {
	// Index is the token position in the input sentence.
	Index int
	// Token is the input surface form.
	Token string
	// Tag is the tag the tagger produced.
	Tag Tag
	// Score is the tagger's confidence for Tag.
	Score float64
	// Effective is the tag actually used after the confidence gate.
	Effective Tag
	// Conjugated is set when Token was a verb root that was inflected.
	Conjugated bool
	// Inserted is the marker emitted before the token, if any.
	Inserted string
	// Output lists the words emitted for this token, in order.
	Output []string
}

// Analysis is the full trace of one reconstruction.
type Analysis struct {
	Tense Tense
	Steps []Step
	// Words is the reconstructed sequence before post-normalization.
	Words []string
	// Text is the final normalized sentence.
	Text string
}

// ConjugationTable holds every tense form of one verb root.
type ConjugationTable struct {
	Root    string
	Class   VerbClass
	Future  string
	Present string
	Past    string
}
