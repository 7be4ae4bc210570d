package markov

import (
	"go/build"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTestBrain creates an empty Brain with a seeded random source so that
// sampling is reproducible within a test.
func newTestBrain(t testing.TB) *Brain {
	t.Helper()
	b, err := NewBrain(DefaultConfig(), WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("NewBrain() error = %v", err)
	}
	return b
}

// newTestBrainWithMemory is a convenience helper that also remembers text.
func newTestBrainWithMemory(t testing.TB, text string) *Brain {
	t.Helper()
	b := newTestBrain(t)
	b.RememberText(text)
	return b
}

// writeCorpus writes text to a file in a temporary directory and returns its path.
func writeCorpus(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "past_memory.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	return path
}

// tokenChars counts the runes of the tokens of an utterance, ignoring the
// spaces joining them.
func tokenChars(utterance string) int {
	n := 0
	for _, word := range strings.Fields(utterance) {
		n += len([]rune(word))
	}
	return n
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
