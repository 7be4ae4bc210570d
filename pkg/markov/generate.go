package markov

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownTopicFormat is the reply used when none of the topic words has been
// remembered.
const UnknownTopicFormat = "Sorry, I don't know about %s"

// speakOptions Is used by SpeakAbout to configure a walk.
type speakOptions struct {
	maxChars       int
	maxRetries     int
	singleRunLimit int
}

// SpeakOption is a function that configures generation parameters. It's used
// as a variadic argument to SpeakAbout.
type SpeakOption func(*speakOptions)

// WithMaxChars sets the character budget of the utterance. Only the tokens are
// counted, not the spaces joining them. A budget smaller than the chosen
// subject yields an empty utterance.
func WithMaxChars(n int) SpeakOption {
	return func(o *speakOptions) { o.maxChars = n }
}

// WithMaxRetries sets how many over-budget continuations may be discarded
// before the walk stops with what it has.
func WithMaxRetries(n int) SpeakOption {
	return func(o *speakOptions) { o.maxRetries = n }
}

// WithSingleRunLimit sets how many consecutive single-candidate bigram contexts
// are followed before the walk switches to the unigram context of the latest
// token. The switch happens on the run that exceeds the limit, unless the lone
// candidate is EndOfUtterance.
func WithSingleRunLimit(n int) SpeakOption {
	return func(o *speakOptions) { o.singleRunLimit = n }
}

// SpeakAbout generates an utterance about one of the whitespace-separated words
// in topic. The words are tried in random order and the first one that has
// been remembered becomes the subject; the utterance starts with it,
// capitalized. If no word is known the reply is UnknownTopicFormat filled with
// the topic. SpeakAbout never fails: an empty or exhausted memory degrades to a
// short or empty utterance.
func (b *Brain) SpeakAbout(topic string, opts ...SpeakOption) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	options := &speakOptions{
		maxChars:       b.config.MaxChars,
		maxRetries:     b.config.MaxRetries,
		singleRunLimit: DefaultSingleRunLimit,
	}
	for _, opt := range opts {
		opt(options)
	}

	subjects := strings.Fields(topic)
	if len(subjects) == 0 {
		return fmt.Sprintf(UnknownTopicFormat, "that")
	}
	candidates := make([]string, len(subjects))
	copy(candidates, subjects)
	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, subject := range candidates {
		if len(b.memory.candidates(Unigram(subject))) == 0 {
			continue
		}
		words := b.walk(subject, options)
		return Articulate(strings.Join(words, " "))
	}

	b.logger.Debug("Unknown topic", slog.String("topic", topic))
	return fmt.Sprintf(UnknownTopicFormat, strings.Join(subjects, " "))
}

// walk samples a path through memory starting at subject and returns the
// accepted tokens. The caller must hold b.mu.
func (b *Brain) walk(subject string, options *speakOptions) []string {
	length := utf8.RuneCountInString(subject)
	if length > options.maxChars {
		b.logger.Debug("Subject exceeds the character budget",
			slog.String("subject", subject),
			slog.Int("max_chars", options.maxChars),
		)
		return nil
	}

	words := []string{capitalize(subject)}
	if length == options.maxChars {
		return words
	}

	// prev and cur are the two most recent accepted tokens; prev is empty
	// until a second token is accepted.
	prev, cur := "", subject
	choices := b.memory.candidates(Unigram(subject))
	retries, singles := 0, 0

	for {
		if len(choices) == 0 {
			b.logger.Debug("Utterance terminated due to dead-end",
				slog.String("last_context", Bigram(prev, cur).String()),
				slog.Int("generated_length", length),
			)
			break
		}

		next := choices[b.rng.IntN(len(choices))]
		if next == EndOfUtterance {
			b.logger.Debug("Utterance terminated by end marker", slog.Int("generated_length", length))
			break
		}

		size := utf8.RuneCountInString(next)
		if size == 0 || length+size > options.maxChars {
			// Drop the token and resample from the same context.
			retries++
			if retries >= options.maxRetries {
				b.logger.Debug("Utterance terminated after exhausting retries",
					slog.Int("retries", retries),
					slog.Int("generated_length", length),
				)
				break
			}
			continue
		}

		words = append(words, next)
		length += size
		if length == options.maxChars {
			b.logger.Debug("Utterance terminated by reaching max_chars", slog.Int("max_chars", options.maxChars))
			break
		}

		prev, cur = cur, next
		choices = b.memory.candidates(Bigram(prev, cur))
		if len(choices) == 1 {
			singles++
			if singles > options.singleRunLimit && choices[0] != EndOfUtterance {
				choices = b.memory.candidates(Unigram(cur))
			}
		} else {
			singles = 0
		}
	}
	return words
}

// capitalize upper-cases the first rune of word and lower-cases the rest.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return strings.ToLower(word)
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
