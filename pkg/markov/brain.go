package markov

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
)

// ErrPastMemory is wrapped by NewBrain when the configured past memory corpus
// cannot be opened or read.
var ErrPastMemory = errors.New("cannot load past memory")

// Brain is the main entry point of the library. It owns a Memory, the random
// source used for sampling and a tokenizer for reading corpora. All methods are
// safe for concurrent use; every operation holds the Brain's lock for its full
// duration.
type Brain struct {
	mu        sync.Mutex
	memory    *Memory
	tokenizer Tokenizer
	rng       *rand.Rand
	config    Config
	logger    *slog.Logger
}

// Option configures a Brain.
type Option func(*Brain)

// WithLogger sets the logger used during loading and generation.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Brain) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRand sets the random source used for shuffling topics and sampling
// continuations. Supplying a seeded source makes generation reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(b *Brain) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// WithTokenizer replaces the tokenizer used by RememberFrom and for the past
// memory corpus. Default: WhitespaceTokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(b *Brain) {
		if t != nil {
			b.tokenizer = t
		}
	}
}

// NewBrain creates a Brain with an empty memory. When cfg.PastMemory is set,
// that file's complete token stream is remembered as a single sequence before
// NewBrain returns; failing to open or read it is reported as an error wrapping
// ErrPastMemory. Non-positive budgets in cfg fall back to the defaults.
func NewBrain(cfg Config, opts ...Option) (*Brain, error) {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	b := &Brain{
		memory:    NewMemory(),
		tokenizer: NewWhitespaceTokenizer(),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	if cfg.PastMemory != "" {
		if err := b.loadPastMemory(cfg.PastMemory); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Brain) loadPastMemory(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: cannot open %q: %w", ErrPastMemory, path, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	if err = b.RememberFrom(file); err != nil {
		return fmt.Errorf("%w: cannot read %q: %w", ErrPastMemory, path, err)
	}

	stats := b.Stats()
	b.logger.Info("Past memory loaded",
		slog.String("path", path),
		slog.Int("unigram_keys", stats.UnigramKeys),
		slog.Int("bigram_keys", stats.BigramKeys),
		slog.Int("transitions", stats.Transitions),
	)
	return nil
}

// SetLogger sets the logger for the Brain. By default, all logs are discarded.
func (b *Brain) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = logger
}

// Remember records the transitions of an already-split token sequence.
// Sequences shorter than three tokens are ignored.
func (b *Brain) Remember(words []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.memory.Remember(words)
}

// RememberText splits text on whitespace and remembers the result.
func (b *Brain) RememberText(text string) {
	b.Remember(strings.Fields(text))
}

// RememberFrom tokenizes r with the Brain's tokenizer and remembers the whole
// stream as one sequence. Nothing is remembered if reading fails.
func (b *Brain) RememberFrom(r io.Reader) error {
	words, err := ReadAll(b.tokenizer.NewStream(r))
	if err != nil {
		return fmt.Errorf("tokenizer error: %w", err)
	}
	b.Remember(words)
	return nil
}

// Import merges mem into the Brain's memory, appending to existing keys.
func (b *Brain) Import(mem *Memory) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.memory.Merge(mem)
}

// Overwrite replaces the Brain's memory with a copy of mem.
func (b *Brain) Overwrite(mem *Memory) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if mem == b.memory {
		return
	}
	b.memory.Reset()
	b.memory.Merge(mem)
}

// Transplant replaces the Brain's memory with a copy of other's. Transplanting
// a Brain into itself leaves it unchanged.
func (b *Brain) Transplant(other *Brain) {
	if other == nil || other == b {
		return
	}
	b.Overwrite(other.Memory())
}

// ForgetAbout removes everything remembered directly after word. Bigram
// contexts containing word are kept.
func (b *Brain) ForgetAbout(word string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.memory.Forget(Unigram(word))
}

// ForgetEverything empties the Brain's memory.
func (b *Brain) ForgetEverything() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.memory.Reset()
}

// Memory returns a deep copy of the Brain's memory.
func (b *Brain) Memory() *Memory {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.memory.Clone()
}

// Stats returns statistics for the Brain's memory.
func (b *Brain) Stats() MemoryStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.memory.Stats()
}
