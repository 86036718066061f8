package translation

import (
	"strings"
	"unicode/utf8"
)

// chunk is a piece of text followed by the separator that joined it to the
// next piece in the original.
type chunk struct {
	text string
	sep  string
}

type splitLevel struct {
	sep   string
	split func(string) []string
}

// Paragraphs, then lines, then sentences, then words.
var splitLevels = []splitLevel{
	{sep: "\n\n", split: func(s string) []string { return strings.Split(s, "\n\n") }},
	{sep: "\n", split: func(s string) []string { return strings.Split(s, "\n") }},
	{sep: " ", split: splitSentences},
	{sep: " ", split: func(s string) []string { return strings.Split(s, " ") }},
}

// chunkText splits text into chunks of at most size runes, preferring the
// coarsest boundary that fits. Concatenating text+sep of every chunk
// reproduces the input.
func chunkText(text string, size int) []chunk {
	if size <= 0 {
		return []chunk{{text: text}}
	}
	return splitAt(text, size, 0)
}

func splitAt(text string, size, depth int) []chunk {
	if utf8.RuneCountInString(text) <= size {
		return []chunk{{text: text}}
	}
	if depth == len(splitLevels) {
		return hardCut(text, size)
	}

	level := splitLevels[depth]
	sepLen := utf8.RuneCountInString(level.sep)

	var (
		out    []chunk
		cur    strings.Builder
		curLen int
		filled bool
	)
	flush := func() {
		if !filled {
			return
		}
		out = append(out, chunk{text: cur.String(), sep: level.sep})
		cur.Reset()
		curLen = 0
		filled = false
	}

	for _, part := range level.split(text) {
		n := utf8.RuneCountInString(part)
		if n > size {
			flush()
			sub := splitAt(part, size, depth+1)
			sub[len(sub)-1].sep = level.sep
			out = append(out, sub...)
			continue
		}
		if filled && curLen+sepLen+n > size {
			flush()
		}
		if filled {
			cur.WriteString(level.sep)
			curLen += sepLen
		}
		cur.WriteString(part)
		curLen += n
		filled = true
	}
	flush()

	out[len(out)-1].sep = ""
	return out
}

// splitSentences splits after '.', '!' or '?' followed by a space. The
// space itself is dropped and restored by the level separator.
func splitSentences(text string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		switch text[i] {
		case '.', '!', '?':
			if text[i+1] == ' ' {
				parts = append(parts, text[start:i+1])
				start = i + 2
				i++
			}
		}
	}
	return append(parts, text[start:])
}

func hardCut(text string, size int) []chunk {
	runes := []rune(text)
	out := make([]chunk, 0, len(runes)/size+1)
	for len(runes) > 0 {
		n := min(size, len(runes))
		out = append(out, chunk{text: string(runes[:n])})
		runes = runes[n:]
	}
	return out
}
