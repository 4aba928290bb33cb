package selection

import "github.com/linkdata/deadlock"

// Store keeps selections in memory. Nothing survives a restart.
type Store struct {
	mu         deadlock.Mutex // protects following
	selections map[string]*Selection
}

func NewStore() *Store {
	return &Store{selections: map[string]*Selection{}}
}

// Create registers and returns a copy of a new empty selection.
func (st *Store) Create() *Selection {
	s := New()
	st.mu.Lock()
	st.selections[s.ID] = s
	st.mu.Unlock()
	return s.Clone()
}

// Get returns a copy of the selection with the given id.
func (st *Store) Get(id string) (*Selection, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.selections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

// Update runs fn on the stored selection and returns a copy of the result.
// If fn fails the selection is left unchanged.
func (st *Store) Update(id string, fn func(*Selection) error) (*Selection, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.selections[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := s.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	st.selections[id] = work
	return work.Clone(), nil
}

func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.selections[id]; !ok {
		return ErrNotFound
	}
	delete(st.selections, id)
	return nil
}

// Len reports how many selections are held.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.selections)
}
