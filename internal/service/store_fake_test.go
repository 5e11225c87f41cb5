package service

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// memNoteStorage is an in-memory store.NoteStorage. InTx works on a copy of
// the data and swaps it in only when fn succeeds, so a failed callback
// leaves no trace, like a rolled back transaction.
type memNoteStorage struct {
	mu   sync.Mutex
	data *memData

	// replays makes InTx run fn that many extra times on throwaway copies
	// first, like a transaction retried after a serialization failure.
	replays int
	// commitErr, when set, is returned after fn succeeded and nothing is kept.
	commitErr error
}

type memData struct {
	nextID int64
	notes  map[int64]models.Note
	grants map[int64]map[int64]models.Collaborator
	labels map[int64][]int64
}

func newMemNoteStorage() *memNoteStorage {
	return &memNoteStorage{data: &memData{
		notes:  map[int64]models.Note{},
		grants: map[int64]map[int64]models.Collaborator{},
		labels: map[int64][]int64{},
	}}
}

func (d *memData) clone() *memData {
	c := &memData{
		nextID: d.nextID,
		notes:  maps.Clone(d.notes),
		grants: make(map[int64]map[int64]models.Collaborator, len(d.grants)),
		labels: make(map[int64][]int64, len(d.labels)),
	}
	for id, g := range d.grants {
		c.grants[id] = maps.Clone(g)
	}
	for id, l := range d.labels {
		c.labels[id] = slices.Clone(l)
	}
	return c
}

func (s *memNoteStorage) Read() store.NoteRepositories {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memRepositories(s.data)
}

func (s *memNoteStorage) InTx(ctx context.Context, fn func(ctx context.Context, repos store.NoteRepositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for range s.replays {
		if err := fn(ctx, memRepositories(s.data.clone())); err != nil {
			return err
		}
	}

	tx := s.data.clone()
	if err := fn(ctx, memRepositories(tx)); err != nil {
		return err
	}
	if s.commitErr != nil {
		return s.commitErr
	}
	s.data = tx
	return nil
}

// seed stores a note directly and returns it with its id.
func (s *memNoteStorage) seed(note models.Note) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.nextID++
	note.ID = s.data.nextID
	if note.State == "" {
		note.State = models.NoteStateActive
	}
	s.data.notes[note.ID] = note
	return note
}

func (s *memNoteStorage) grant(noteID, userID int64, level models.AccessLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.grants[noteID] == nil {
		s.data.grants[noteID] = map[int64]models.Collaborator{}
	}
	s.data.grants[noteID][userID] = models.Collaborator{NoteID: noteID, UserID: userID, AccessLevel: level}
}

func (s *memNoteStorage) attach(noteID int64, labelIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.labels[noteID] = append(s.data.labels[noteID], labelIDs...)
}

func (s *memNoteStorage) note(id int64) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.data.notes[id]
	return n, ok
}

func (s *memNoteStorage) grantsOf(noteID int64) map[int64]models.Collaborator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.data.grants[noteID])
}

func (s *memNoteStorage) labelsOf(noteID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.labels[noteID])
}

func memRepositories(d *memData) store.NoteRepositories {
	return store.NoteRepositories{
		Notes:         memNotes{d},
		Collaborators: memCollaborators{d},
		NoteLabels:    memNoteLabels{d},
	}
}

type memNotes struct{ d *memData }

func (m memNotes) CreateNote(_ context.Context, note models.Note) (models.Note, error) {
	m.d.nextID++
	note.ID = m.d.nextID
	m.d.notes[note.ID] = note
	return note, nil
}

func (m memNotes) GetNote(_ context.Context, noteID int64) (models.Note, error) {
	n, ok := m.d.notes[noteID]
	if !ok {
		return models.Note{}, store.ErrNoteNotFound
	}
	return n, nil
}

func (m memNotes) LockNote(ctx context.Context, noteID int64) (models.Note, error) {
	return m.GetNote(ctx, noteID)
}

func (m memNotes) ListNotesByOwner(_ context.Context, ownerID int64) ([]models.Note, error) {
	var out []models.Note
	for _, id := range slices.Sorted(maps.Keys(m.d.notes)) {
		if n := m.d.notes[id]; n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m memNotes) ListSharedNotes(_ context.Context, userID int64) ([]models.SharedNote, error) {
	var out []models.SharedNote
	for _, id := range slices.Sorted(maps.Keys(m.d.grants)) {
		if g, ok := m.d.grants[id][userID]; ok {
			out = append(out, models.SharedNote{Note: m.d.notes[id], AccessLevel: g.AccessLevel})
		}
	}
	return out, nil
}

func (m memNotes) UpdateNote(_ context.Context, note models.Note) error {
	if _, ok := m.d.notes[note.ID]; !ok {
		return store.ErrNoteNotFound
	}
	m.d.notes[note.ID] = note
	return nil
}

func (m memNotes) DeleteNote(_ context.Context, noteID int64) error {
	if _, ok := m.d.notes[noteID]; !ok {
		return store.ErrNoteNotFound
	}
	delete(m.d.notes, noteID)
	return nil
}

type memCollaborators struct{ d *memData }

func (m memCollaborators) GetCollaborator(_ context.Context, noteID, userID int64) (models.Collaborator, error) {
	g, ok := m.d.grants[noteID][userID]
	if !ok {
		return models.Collaborator{}, store.ErrCollaboratorNotFound
	}
	return g, nil
}

func (m memCollaborators) ListCollaborators(_ context.Context, noteID int64) ([]models.Collaborator, error) {
	out := []models.Collaborator{}
	for _, id := range slices.Sorted(maps.Keys(m.d.grants[noteID])) {
		out = append(out, m.d.grants[noteID][id])
	}
	return out, nil
}

func (m memCollaborators) FindCollaborators(_ context.Context, noteID int64, userIDs []int64) ([]models.Collaborator, error) {
	out := []models.Collaborator{}
	for _, id := range userIDs {
		if g, ok := m.d.grants[noteID][id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m memCollaborators) AddCollaborators(_ context.Context, grants []models.Collaborator) error {
	for _, g := range grants {
		if _, ok := m.d.grants[g.NoteID][g.UserID]; ok {
			return store.ErrCollaboratorExists
		}
		if m.d.grants[g.NoteID] == nil {
			m.d.grants[g.NoteID] = map[int64]models.Collaborator{}
		}
		m.d.grants[g.NoteID][g.UserID] = g
	}
	return nil
}

func (m memCollaborators) RemoveCollaborators(_ context.Context, noteID int64, userIDs []int64) (int64, error) {
	var n int64
	for _, id := range userIDs {
		if _, ok := m.d.grants[noteID][id]; ok {
			delete(m.d.grants[noteID], id)
			n++
		}
	}
	return n, nil
}

func (m memCollaborators) DeleteNoteCollaborators(_ context.Context, noteID int64) error {
	delete(m.d.grants, noteID)
	return nil
}

type memNoteLabels struct{ d *memData }

func (m memNoteLabels) ListNoteLabels(_ context.Context, noteID int64) ([]int64, error) {
	out := slices.Clone(m.d.labels[noteID])
	if out == nil {
		out = []int64{}
	}
	return out, nil
}

func (m memNoteLabels) AttachLabels(_ context.Context, noteID int64, labelIDs []int64) error {
	for _, id := range labelIDs {
		if slices.Contains(m.d.labels[noteID], id) {
			return store.ErrLabelAlreadyAttached
		}
		m.d.labels[noteID] = append(m.d.labels[noteID], id)
	}
	return nil
}

func (m memNoteLabels) DetachLabels(_ context.Context, noteID int64, labelIDs []int64) (int64, error) {
	before := len(m.d.labels[noteID])
	m.d.labels[noteID] = slices.DeleteFunc(m.d.labels[noteID], func(id int64) bool {
		return slices.Contains(labelIDs, id)
	})
	return int64(before - len(m.d.labels[noteID])), nil
}

func (m memNoteLabels) DeleteNoteLabels(_ context.Context, noteID int64) error {
	delete(m.d.labels, noteID)
	return nil
}
