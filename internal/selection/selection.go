package selection

import (
	"errors"

	"github.com/google/uuid"

	"github.com/youruser/lettercat/internal/catalogue"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrLetterMismatch = errors.New("replacement must show the same letter")
)

// Entry is one occurrence of an image in a selection. The same image may
// appear in several entries.
type Entry struct {
	SelectionID string          `json:"selection_id"`
	Order       int             `json:"order"`
	Image       catalogue.Image `json:"image"`
}

// Selection is an ordered list of catalogue images.
type Selection struct {
	ID      string  `json:"id"`
	Entries []Entry `json:"entries"`
}

// New returns an empty selection with a fresh id.
func New() *Selection {
	return &Selection{ID: uuid.NewString(), Entries: []Entry{}}
}

// Add appends img and returns the new entry.
func (s *Selection) Add(img catalogue.Image) Entry {
	e := Entry{
		SelectionID: img.ID + "-" + uuid.NewString(),
		Order:       len(s.Entries) + 1,
		Image:       img,
	}
	s.Entries = append(s.Entries, e)
	return e
}

// Remove drops the entry with the given selection id.
func (s *Selection) Remove(sid string) error {
	i := s.index(sid)
	if i < 0 {
		return ErrNotFound
	}
	s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
	s.renumber()
	return nil
}

// Reorder moves the dragged entry to the position of target, shifting the
// entries in between. It reports whether anything moved.
func (s *Selection) Reorder(dragged, target string) bool {
	if dragged == target {
		return false
	}
	from, to := s.index(dragged), s.index(target)
	if from < 0 || to < 0 {
		return false
	}
	e := s.Entries[from]
	s.Entries = append(s.Entries[:from], s.Entries[from+1:]...)
	s.Entries = append(s.Entries[:to], append([]Entry{e}, s.Entries[to:]...)...)
	s.renumber()
	return true
}

// Replace swaps the image of an entry for another image of the same letter.
// The entry keeps its position and selection id.
func (s *Selection) Replace(sid string, img catalogue.Image) error {
	i := s.index(sid)
	if i < 0 {
		return ErrNotFound
	}
	if s.Entries[i].Image.Letter != img.Letter {
		return ErrLetterMismatch
	}
	s.Entries[i].Image = img
	return nil
}

func (s *Selection) Clear() {
	s.Entries = []Entry{}
}

// Locators returns the image sources in selection order.
func (s *Selection) Locators() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Image.Src
	}
	return out
}

// Clone returns a deep copy of s.
func (s *Selection) Clone() *Selection {
	c := &Selection{ID: s.ID, Entries: make([]Entry, len(s.Entries))}
	copy(c.Entries, s.Entries)
	return c
}

func (s *Selection) index(sid string) int {
	for i, e := range s.Entries {
		if e.SelectionID == sid {
			return i
		}
	}
	return -1
}

func (s *Selection) renumber() {
	for i := range s.Entries {
		s.Entries[i].Order = i + 1
	}
}
