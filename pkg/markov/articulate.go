package markov

import "strings"

// sentenceEnds are the marks an utterance may be truncated after.
const sentenceEnds = ".;?!"

// Articulate tidies raw generated text for presentation. Unless the text
// already ends with a period, it is cut just after the right-most of . ; ? !
// (keeping one closing double quote that directly follows the mark). Text with
// no such mark, or whose only mark is at the very start or end, is left as it
// is. Finally an unpaired double quote is dealt with by BalanceQuotes.
func Articulate(text string) string {
	if text == "" {
		return text
	}
	if !strings.HasSuffix(text, ".") {
		if last := lastSentenceEnd(text); last > 0 && last < len(text)-1 {
			text = text[:last+1]
		}
	}
	return BalanceQuotes(text)
}

// lastSentenceEnd returns the byte index of the right-most sentence end mark in
// text, advanced past a double quote that directly follows it, or -1.
func lastSentenceEnd(text string) int {
	last := strings.LastIndexAny(text, sentenceEnds)
	if last < 0 {
		return -1
	}
	if last < len(text)-1 && text[last+1] == '"' {
		last++
	}
	return last
}

// BalanceQuotes removes every double quote from text when their number is odd.
func BalanceQuotes(text string) string {
	if strings.Count(text, `"`)%2 != 0 {
		return strings.ReplaceAll(text, `"`, "")
	}
	return text
}
