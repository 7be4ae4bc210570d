package markov

// MemoryStats holds aggregated statistics for a Memory.
type MemoryStats struct {
	UnigramKeys int // The number of single-token contexts
	BigramKeys  int // The number of two-token contexts
	Transitions int // The number of recorded continuations, sentinels included
	Terminals   int // The number of bigrams that can end an utterance
}

// Stats returns a snapshot of statistics for m.
func (m *Memory) Stats() MemoryStats {
	var stats MemoryStats
	for key, words := range m.chains {
		if key.bigram {
			stats.BigramKeys++
		} else {
			stats.UnigramKeys++
		}
		stats.Transitions += len(words)
		for _, w := range words {
			if w == EndOfUtterance {
				stats.Terminals++
				break
			}
		}
	}
	return stats
}
