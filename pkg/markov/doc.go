/*
Package markov provides a small, in-memory Markov chain "brain" that learns
word transitions from whitespace-split text and speaks about a topic in
bounded, sentence-like utterances.

Every remembered sequence contributes transitions under both single-word and
two-word contexts, so generation can follow the finer two-word context and
fall back to the coarser one when a path becomes degenerate. Generated text is
capped by a character budget, truncated at the last sentence boundary and has
unpaired quotes removed.

	brain, err := markov.NewBrain(markov.Config{PastMemory: "corpus.txt"})
	if err != nil {
		// handle the unreadable corpus
	}
	brain.RememberText("the cat sat on the mat")
	fmt.Println(brain.SpeakAbout("cat", markov.WithMaxChars(140)))
*/
package markov
