// Package moderation masks banned words in circular titles and bodies
// before they are persisted. Masking, not rejection: an announcement is
// still delivered, offending characters are replaced.
package moderation

import (
	"bufio"
	"os"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	machine  *goahocorasick.Machine
	maskChar rune
}

// NewModerator builds the Aho-Corasick automaton over the folded form of
// each banned word. An empty word list yields a pass-through moderator.
func NewModerator(bannedWords []string, maskChar rune) (*Moderator, error) {
	if len(bannedWords) == 0 {
		return &Moderator{maskChar: maskChar}, nil
	}
	patterns := make([][]rune, 0, len(bannedWords))
	for _, w := range bannedWords {
		folded, _ := fold([]rune(w))
		if len(folded) > 0 {
			patterns = append(patterns, folded)
		}
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{machine: machine, maskChar: maskChar}, nil
}

// Mask replaces every character of a matched banned word with the mask
// character. Matching runs on a folded text (lowercased, separators and
// common digit substitutions removed); positions are mapped back so
// spacing in the original is preserved.
func (m *Moderator) Mask(text string) string {
	if m.machine == nil {
		return text
	}
	original := []rune(text)
	folded, origIdx := fold(original)
	if len(folded) == 0 {
		return text
	}

	hits := m.machine.MultiPatternSearch(folded, false)
	if len(hits) == 0 {
		return text
	}

	for _, hit := range hits {
		start := hit.Pos
		end := start + len(hit.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			original[i] = m.maskChar
		}
	}
	return string(original)
}

// fold lowercases, drops separators and maps common digit substitutions
// back to letters. The second return value maps each folded position to
// its index in the input.
func fold(in []rune) ([]rune, []int) {
	out := make([]rune, 0, len(in))
	idx := make([]int, 0, len(in))
	for i, r := range in {
		r = unfoldDigit(r)
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
		idx = append(idx, i)
	}
	return out, idx
}

func unfoldDigit(r rune) rune {
	switch r {
	case '0':
		return 'o'
	case '1':
		return 'i'
	case '3':
		return 'e'
	case '4':
		return 'a'
	case '5':
		return 's'
	}
	return r
}

// LoadWordList reads one banned word per line, skipping blanks and
// '#'-prefixed comments.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
