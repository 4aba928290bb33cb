package catalogue

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// MaxTextLength bounds the text accepted by FromText.
const MaxTextLength = 20

var (
	ErrEmptyText   = errors.New("text has no letters")
	ErrTextTooLong = fmt.Errorf("text longer than %d characters", MaxTextLength)
)

// UnavailableError lists the letters of a text that have no image.
type UnavailableError struct {
	Letters []string
}

func (e *UnavailableError) Error() string {
	return "no images for letters: " + strings.Join(e.Letters, ", ")
}

// LetterStatus summarises how much of a text the catalogue can spell.
type LetterStatus struct {
	TotalLetters   int      `json:"total_letters"`
	AvailableCount int      `json:"available_count"`
	Unavailable    []string `json:"unavailable_letters"`
}

// Ready reports whether every letter of the text has an image.
func (s LetterStatus) Ready() bool {
	return s.TotalLetters > 0 && len(s.Unavailable) == 0
}

// Sanitize keeps letters and whitespace and uppercases the result.
func Sanitize(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
			sb.WriteRune(unicode.ToUpper(r))
		}
	}
	return sb.String()
}

// Status reports which letters of text the catalogue has images for.
// Whitespace is ignored; unavailable letters are listed once each.
func Status(images []Image, text string) LetterStatus {
	avail := map[string]bool{}
	for _, l := range AvailableLetters(images) {
		avail[l] = true
	}
	st := LetterStatus{Unavailable: []string{}}
	seen := map[string]bool{}
	for _, r := range strings.ToUpper(text) {
		if unicode.IsSpace(r) {
			continue
		}
		st.TotalLetters++
		l := string(r)
		if avail[l] {
			st.AvailableCount++
			continue
		}
		if !seen[l] {
			seen[l] = true
			st.Unavailable = append(st.Unavailable, l)
		}
	}
	return st
}

// FromText spells text with the catalogue: each letter becomes a randomly chosen
// image of that letter, whitespace is dropped. Characters other than letters and
// whitespace are removed first.
func FromText(images []Image, text string, rng *rand.Rand) ([]Image, error) {
	text = strings.TrimSpace(Sanitize(text))
	if len([]rune(text)) > MaxTextLength {
		return nil, ErrTextTooLong
	}
	st := Status(images, text)
	if st.TotalLetters == 0 {
		return nil, ErrEmptyText
	}
	if len(st.Unavailable) > 0 {
		return nil, &UnavailableError{Letters: st.Unavailable}
	}

	byLetter := map[string][]Image{}
	for _, img := range images {
		byLetter[img.Letter] = append(byLetter[img.Letter], img)
	}
	out := make([]Image, 0, st.TotalLetters)
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		choices := byLetter[string(r)]
		out = append(out, choices[rng.Intn(len(choices))])
	}
	return out, nil
}
