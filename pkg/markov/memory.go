package markov

import (
	"slices"
	"strings"
)

// EndOfUtterance is the sentinel recorded after the final bigram of every
// remembered sequence. It can never be produced by whitespace tokenization,
// so it is never confused with a word.
const EndOfUtterance = "\n"

// Key identifies a transition context. A Key is either a unigram (a single
// token) or a bigram (an ordered pair of tokens). The shape is part of the key,
// so Unigram("a b") and Bigram("a", "b") are distinct.
type Key struct {
	first  string
	second string
	bigram bool
}

// Unigram returns the single-token context for w.
func Unigram(w string) Key {
	return Key{first: w}
}

// Bigram returns the two-token context (w0, w1).
func Bigram(w0, w1 string) Key {
	return Key{first: w0, second: w1, bigram: true}
}

// IsBigram reports whether k is a two-token context.
func (k Key) IsBigram() bool {
	return k.bigram
}

// Words returns the tokens making up the key, in order.
func (k Key) Words() []string {
	if k.bigram {
		return []string{k.first, k.second}
	}
	return []string{k.first}
}

// String renders unigrams as the bare token and bigrams as "(w0 w1)".
func (k Key) String() string {
	if k.bigram {
		return "(" + k.first + " " + k.second + ")"
	}
	return k.first
}

// Memory stores every observed transition, mapping a Key to the ordered list of
// tokens seen after it. Duplicates are kept: a token seen twice after a context
// is twice as likely to be sampled.
//
// Memory is not safe for concurrent use; Brain serializes access to the Memory
// it owns.
type Memory struct {
	chains map[Key][]string
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{chains: make(map[Key][]string)}
}

// Remember records the transitions of a whitespace-split token sequence. For
// every consecutive triple (w0, w1, w2) it appends w2 under (w0, w1), w1 under
// w0 and w2 under w1, then marks the final bigram as a legal end of utterance.
// Sequences shorter than three tokens are ignored.
func (m *Memory) Remember(words []string) {
	if len(words) < 3 {
		return
	}
	for i := 0; i+2 < len(words); i++ {
		w0, w1, w2 := words[i], words[i+1], words[i+2]
		m.Add(Bigram(w0, w1), w2)
		m.Add(Unigram(w0), w1)
		m.Add(Unigram(w1), w2)
	}
	key := Bigram(words[len(words)-2], words[len(words)-1])
	m.chains[key] = append(m.chains[key], EndOfUtterance)
}

// Add appends a single observed continuation under key. Surrounding whitespace
// is trimmed from the recorded value.
func (m *Memory) Add(key Key, word string) {
	m.chains[key] = append(m.chains[key], strings.TrimSpace(word))
}

// Merge appends every candidate list of other onto the list of the same key in
// m, creating keys as needed. other is left untouched and shares no storage
// with m afterwards.
func (m *Memory) Merge(other *Memory) {
	if other == nil {
		return
	}
	if other == m {
		other = m.Clone()
	}
	for key, words := range other.chains {
		existing := m.chains[key]
		merged := make([]string, 0, len(existing)+len(words))
		merged = append(merged, existing...)
		m.chains[key] = append(merged, words...)
	}
}

// Reset drops every key.
func (m *Memory) Reset() {
	m.chains = make(map[Key][]string)
}

// Forget removes key and its candidate list. Forgetting an absent key is a
// no-op.
func (m *Memory) Forget(key Key) {
	delete(m.chains, key)
}

// Lookup returns a copy of the candidates recorded for key, or nil when the key
// has never been seen.
func (m *Memory) Lookup(key Key) []string {
	return slices.Clone(m.chains[key])
}

// candidates is the non-copying lookup used by the generator.
func (m *Memory) candidates(key Key) []string {
	return m.chains[key]
}

// Len returns the number of keys.
func (m *Memory) Len() int {
	return len(m.chains)
}

// Keys returns every key, unigrams first, each group sorted by its words.
func (m *Memory) Keys() []Key {
	keys := make([]Key, 0, len(m.chains))
	for key := range m.chains {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if a.bigram != b.bigram {
			if a.bigram {
				return 1
			}
			return -1
		}
		if c := strings.Compare(a.first, b.first); c != 0 {
			return c
		}
		return strings.Compare(a.second, b.second)
	})
	return keys
}

// Clone returns a deep copy of m.
func (m *Memory) Clone() *Memory {
	c := &Memory{chains: make(map[Key][]string, len(m.chains))}
	for key, words := range m.chains {
		c.chains[key] = slices.Clone(words)
	}
	return c
}
