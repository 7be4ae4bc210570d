package markov

import (
	"fmt"
	"strings"
	"testing"
)

func TestSpeakAboutUnknownTopic(t *testing.T) {
	testCases := []struct {
		name     string
		memory   string
		topic    string
		expected string
	}{
		{
			name:     "Single unknown word",
			memory:   "the cat sat on the mat",
			topic:    "zzzqqq",
			expected: "Sorry, I don't know about zzzqqq",
		},
		{
			name:     "Empty memory",
			topic:    "zzzqqq",
			expected: "Sorry, I don't know about zzzqqq",
		},
		{
			name:     "Several unknown words keep their order",
			memory:   "the cat sat on the mat",
			topic:    "  dog   bird ",
			expected: "Sorry, I don't know about dog bird",
		},
		{
			name:     "Empty topic",
			memory:   "the cat sat on the mat",
			topic:    "   ",
			expected: "Sorry, I don't know about that",
		},
		{
			name:     "Word only seen at the end has no continuation",
			memory:   "the cat sat on the mat",
			topic:    "mat",
			expected: "Sorry, I don't know about mat",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBrainWithMemory(t, tc.memory)
			if got := b.SpeakAbout(tc.topic); got != tc.expected {
				t.Errorf("SpeakAbout(%q) = %q, want %q", tc.topic, got, tc.expected)
			}
		})
	}
}

func TestSpeakAboutKnownTopic(t *testing.T) {
	b := newTestBrainWithMemory(t, "the cat sat on the mat")

	// Every continuation of "the" is three characters long, so a budget of
	// five only ever fits the subject itself.
	for i := 0; i < 20; i++ {
		if got := b.SpeakAbout("the", WithMaxChars(5)); got != "The" {
			t.Fatalf("SpeakAbout(the, 5) = %q, want %q", got, "The")
		}
	}

	got := b.SpeakAbout("the", WithMaxChars(140))
	if !strings.HasPrefix(got, "The ") {
		t.Errorf("expected utterance to start with the capitalized subject, got %q", got)
	}
}

func TestSpeakAboutPicksKnownWordAmongSeveral(t *testing.T) {
	b := newTestBrainWithMemory(t, "the cat sat on the mat")
	for i := 0; i < 20; i++ {
		got := b.SpeakAbout("dog cat bird")
		if !strings.HasPrefix(got, "Cat") {
			t.Fatalf("SpeakAbout(dog cat bird) = %q, want it to start with Cat", got)
		}
	}
}

func TestSpeakAboutFollowsMemory(t *testing.T) {
	b := newTestBrainWithMemory(t, "alpha beta gamma delta.")

	// The only end of utterance is after the final word.
	expected := "Alpha beta gamma delta."
	for i := 0; i < 20; i++ {
		if got := b.SpeakAbout("alpha"); got != expected {
			t.Fatalf("SpeakAbout(alpha) = %q, want %q", got, expected)
		}
	}
}

func TestSpeakAboutBudget(t *testing.T) {
	testCases := []struct {
		name     string
		maxChars int
		expected string
	}{
		{name: "Zero budget", maxChars: 0, expected: ""},
		{name: "Negative budget", maxChars: -10, expected: ""},
		{name: "Budget shorter than subject", maxChars: 4, expected: ""},
		{name: "Budget equal to subject", maxChars: 5, expected: "Alpha"},
		{name: "Budget met exactly", maxChars: 9, expected: "Alpha beta"},
		{name: "Next token overflows", maxChars: 13, expected: "Alpha beta"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBrainWithMemory(t, "alpha beta gamma delta.")
			if got := b.SpeakAbout("alpha", WithMaxChars(tc.maxChars)); got != tc.expected {
				t.Errorf("SpeakAbout(alpha, %d) = %q, want %q", tc.maxChars, got, tc.expected)
			}
		})
	}
}

func TestSpeakAboutRetriesOverBudgetTokens(t *testing.T) {
	b := newTestBrain(t)
	m := NewMemory()
	m.Add(Unigram("s"), "toolongword")
	m.Add(Unigram("s"), "ok")
	b.Import(m)

	if got := b.SpeakAbout("s", WithMaxChars(3)); got != "S ok" {
		t.Errorf("SpeakAbout(s, 3) = %q, want %q", got, "S ok")
	}
}

func TestSpeakAboutStopsWhenRetriesRunOut(t *testing.T) {
	b := newTestBrain(t)
	m := NewMemory()
	m.Add(Unigram("s"), "toolongword")
	b.Import(m)

	if got := b.SpeakAbout("s", WithMaxChars(3), WithMaxRetries(3)); got != "S" {
		t.Errorf("SpeakAbout(s, 3) = %q, want %q", got, "S")
	}
}

func TestSpeakAboutFallsBackAfterSingleCandidateRun(t *testing.T) {
	chain := func(last string) *Memory {
		m := NewMemory()
		m.Add(Unigram("s"), "x")
		m.Add(Bigram("s", "x"), "y")
		m.Add(Bigram("x", "y"), "z")
		m.Add(Bigram("y", "z"), last)
		m.Add(Unigram("z"), "q")
		return m
	}

	testCases := []struct {
		name     string
		memory   *Memory
		limit    int
		expected string
	}{
		{name: "Default limit switches on the third single candidate", memory: chain("w"), limit: DefaultSingleRunLimit, expected: "S x y z q"},
		{name: "High limit keeps following bigrams", memory: chain("w"), limit: 100, expected: "S x y z w"},
		{name: "Zero limit switches immediately", memory: chain("w"), limit: 0, expected: "S x"},
		{name: "Lone end marker ends the utterance", memory: chain(EndOfUtterance), limit: DefaultSingleRunLimit, expected: "S x y z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBrain(t)
			b.Import(tc.memory)
			if got := b.SpeakAbout("s", WithSingleRunLimit(tc.limit)); got != tc.expected {
				t.Errorf("SpeakAbout(s) = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestSpeakAboutArticulates(t *testing.T) {
	b := newTestBrainWithMemory(t, `He said "stop! now`)
	// The walk ends in an unpaired quote after the last "!".
	got := b.SpeakAbout("He")
	if got != "He said stop!" {
		t.Errorf("SpeakAbout(He) = %q, want %q", got, "He said stop!")
	}
}

func TestCapitalize(t *testing.T) {
	testCases := map[string]string{
		"dantes":  "Dantes",
		"DANTES":  "Dantes",
		"élan":    "Élan",
		`"quoted`: `"quoted`,
		"x":       "X",
	}
	for in, want := range testCases {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func BenchmarkSpeakAbout(b *testing.B) {
	brain := newTestBrainWithMemory(b, createBenchmarkCorpus())

	for _, maxChars := range []int{40, 140, 1000} {
		b.Run(fmt.Sprintf("MaxChars%d", maxChars), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := brain.SpeakAbout("func return", WithMaxChars(maxChars))
				b.SetBytes(int64(len(s)))
			}
		})
	}
}
