package markov

const (
	// DefaultMaxChars is the character budget of an utterance.
	DefaultMaxChars = 140
	// DefaultMaxRetries bounds how many over-budget continuations a walk may
	// discard before it stops.
	DefaultMaxRetries = 25
	// DefaultSingleRunLimit is how many consecutive single-candidate bigrams
	// are followed before the walk falls back to the unigram context.
	DefaultSingleRunLimit = 2
)

// Config holds the options a Brain is constructed with.
type Config struct {
	// PastMemory is the path of a plain text corpus whose whole token stream is
	// remembered once at construction. Empty means start with an empty memory.
	PastMemory string `yaml:"past_memory" json:"past_memory"`

	// MaxChars is the default character budget used by SpeakAbout.
	MaxChars int `yaml:"max_chars" json:"max_chars"`

	// MaxRetries is the default retry bound used by SpeakAbout.
	MaxRetries int `yaml:"max_retries" json:"max_retries"`
}

// DefaultConfig returns a Config with an empty memory and the default budgets.
func DefaultConfig() Config {
	return Config{
		MaxChars:   DefaultMaxChars,
		MaxRetries: DefaultMaxRetries,
	}
}
