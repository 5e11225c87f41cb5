package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/cache"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/reminder"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/internal/validators"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// noteService is the concrete implementation of NoteService.
//
// Every check-then-act sequence runs inside one store transaction; the
// cache is refreshed only after the transaction committed and its failures
// are logged, never returned.
type noteService struct {
	storage   store.NoteStorage
	cache     cache.NoteCache
	scheduler reminder.Scheduler
	identity  adapter.IdentityResolver
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewNoteService constructs a NoteService. cache may be [cache.Nop].
func NewNoteService(
	storage store.NoteStorage,
	noteCache cache.NoteCache,
	scheduler reminder.Scheduler,
	identity adapter.IdentityResolver,
	validator validators.Validator,
	logger *logger.Logger,
) NoteService {
	return &noteService{
		storage:   storage,
		cache:     noteCache,
		scheduler: scheduler,
		identity:  identity,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, userID int64, in models.NoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var recipient string
	if in.Reminder != nil {
		var err error
		if recipient, err = s.recipient(ctx, userID); err != nil {
			return models.Note{}, err
		}
	}

	var created models.Note
	reminders := newReminderChanges(s.scheduler)
	err := s.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		reminders.begin()
		note, err := repos.Notes.CreateNote(ctx, in.NewNote(userID, s.now()))
		if err != nil {
			return mapStoreError(err)
		}
		if note.Reminder != nil {
			if err = reminders.schedule(ctx, reminderRequest(note, recipient)); err != nil {
				return err
			}
		}
		created = note
		return nil
	})
	reminders.settle(ctx, err)
	if err != nil {
		log.Err(err).Str("func", "noteService.CreateNote").Int64("user_id", userID).Msg("note was not created")
		return models.Note{}, err
	}

	s.putCached(ctx, created)
	log.Info().Int64("note_id", created.ID).Int64("user_id", userID).Msg("note created")

	return created, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID int64, state models.NoteState) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if state != "" && !state.Valid() {
		return nil, ErrInvalidState
	}

	notes, ok, err := s.cache.Notes(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "noteService.ListNotes").Int64("user_id", userID).Msg("note cache read failed")
	}
	if err != nil || !ok {
		// the generation is taken before the store read so a write landing
		// in between keeps this snapshot out of the cache
		gen, genErr := s.cache.Generation(ctx, userID)
		if genErr != nil {
			log.Warn().Err(genErr).Str("func", "noteService.ListNotes").Int64("user_id", userID).Msg("note cache generation read failed")
		}

		notes, err = s.storage.Read().Notes.ListNotesByOwner(ctx, userID)
		if err != nil {
			log.Err(err).Str("func", "noteService.ListNotes").Int64("user_id", userID).Msg("listing notes failed")
			return nil, mapStoreError(err)
		}

		if genErr == nil {
			err = s.cache.Fill(ctx, userID, gen, notes)
			switch {
			case errors.Is(err, cache.ErrStaleSnapshot):
				log.Debug().Str("func", "noteService.ListNotes").Int64("user_id", userID).Msg("notes changed during read, snapshot skipped")
			case err != nil:
				log.Warn().Err(err).Str("func", "noteService.ListNotes").Int64("user_id", userID).Msg("note cache fill failed")
			}
		}
	}

	return filterByState(notes, state), nil
}

func (s *noteService) ListSharedNotes(ctx context.Context, userID int64) ([]models.SharedNote, error) {
	notes, err := s.storage.Read().Notes.ListSharedNotes(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.ListSharedNotes").Int64("user_id", userID).Msg("listing shared notes failed")
		return nil, mapStoreError(err)
	}
	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, access, err := ResolveAccess(ctx, s.storage.Read(), noteID, userID)
	if err != nil {
		return models.Note{}, err
	}
	if err = requireRead(access); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// UpdateNote edits note fields. A trashed note rejects every edit, whoever
// the caller is, as long as the caller can see the note at all.
func (s *noteService) UpdateNote(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var recipient string
	if update.Reminder != nil {
		var err error
		if recipient, err = s.recipient(ctx, userID); err != nil {
			return models.Note{}, err
		}
	}

	var updated models.Note
	reminders := newReminderChanges(s.scheduler)
	err := s.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		reminders.begin()
		note, access, err := lockAccess(ctx, repos, noteID, userID)
		if err != nil {
			return err
		}
		if err = requireRead(access); err != nil {
			return err
		}
		if note.State == models.NoteStateTrashed {
			return ErrNoteTrashed
		}
		if err = requireWrite(access); err != nil {
			return err
		}

		previous := note.Reminder
		reminderChanged := update.Apply(&note)
		note.ModifiedAt = s.now()
		if err = repos.Notes.UpdateNote(ctx, note); err != nil {
			return mapStoreError(err)
		}
		switch {
		case reminderChanged && note.Reminder != nil:
			err = reminders.schedule(ctx, reminderRequest(note, recipient))
		case reminderChanged:
			err = reminders.cancel(ctx, models.ReminderTaskName(note.ID, *previous))
		}
		if err != nil {
			return err
		}
		updated = note
		return nil
	})
	reminders.settle(ctx, err)
	if err != nil {
		log.Err(err).Str("func", "noteService.UpdateNote").Int64("note_id", noteID).Int64("user_id", userID).Msg("note was not updated")
		return models.Note{}, err
	}

	s.putCached(ctx, updated)
	return updated, nil
}

// DeleteNote removes the note together with its grants, label links and
// pending reminder.
func (s *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	var ownerID int64
	reminders := newReminderChanges(s.scheduler)
	err := s.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		reminders.begin()
		note, access, err := lockAccess(ctx, repos, noteID, userID)
		if err != nil {
			return err
		}
		if err = requireOwner(access); err != nil {
			return err
		}

		if err = repos.Collaborators.DeleteNoteCollaborators(ctx, noteID); err != nil {
			return mapStoreError(err)
		}
		if err = repos.NoteLabels.DeleteNoteLabels(ctx, noteID); err != nil {
			return mapStoreError(err)
		}
		if err = repos.Notes.DeleteNote(ctx, noteID); err != nil {
			return mapStoreError(err)
		}
		if note.Reminder != nil {
			if err = reminders.cancel(ctx, models.ReminderTaskName(noteID, *note.Reminder)); err != nil {
				return err
			}
		}
		ownerID = note.OwnerID
		return nil
	})
	reminders.settle(ctx, err)
	if err != nil {
		log.Err(err).Str("func", "noteService.DeleteNote").Int64("note_id", noteID).Int64("user_id", userID).Msg("note was not deleted")
		return err
	}

	if err = s.cache.Delete(ctx, ownerID, noteID); err != nil {
		log.Warn().Err(err).Str("func", "noteService.DeleteNote").Int64("note_id", noteID).Msg("note cache delete failed")
	}
	log.Info().Int64("note_id", noteID).Msg("note deleted")

	return nil
}

func (s *noteService) ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return s.transition(ctx, "noteService.ToggleArchive", userID, noteID, nextArchiveState)
}

func (s *noteService) ToggleTrash(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return s.transition(ctx, "noteService.ToggleTrash", userID, noteID, nextTrashState)
}

// transition applies an owner-only lifecycle step and persists it with a
// new modification time in the same transaction that read the state.
func (s *noteService) transition(
	ctx context.Context,
	funcName string,
	userID, noteID int64,
	next func(models.NoteState) (models.NoteState, error),
) (models.Note, error) {
	log := logger.FromContext(ctx)

	var changed models.Note
	err := s.storage.InTx(ctx, func(ctx context.Context, repos store.NoteRepositories) error {
		note, access, err := lockAccess(ctx, repos, noteID, userID)
		if err != nil {
			return err
		}
		if err = requireOwner(access); err != nil {
			return err
		}

		if note.State, err = next(note.State); err != nil {
			return err
		}
		note.ModifiedAt = s.now()
		if err = repos.Notes.UpdateNote(ctx, note); err != nil {
			return mapStoreError(err)
		}
		changed = note
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("note_id", noteID).Int64("user_id", userID).Msg("note state was not changed")
		return models.Note{}, err
	}

	s.putCached(ctx, changed)
	log.Info().Str("func", funcName).Int64("note_id", noteID).Str("state", string(changed.State)).Msg("note state changed")

	return changed, nil
}

// recipient resolves the email the reminders of userID are sent to.
func (s *noteService) recipient(ctx context.Context, userID int64) (string, error) {
	profile, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.recipient").Int64("user_id", userID).Msg("reminder recipient lookup failed")
		return "", mapAdapterError(err, ErrUserNotFound)
	}
	return profile.Email, nil
}

func reminderRequest(note models.Note, recipient string) models.ReminderRequest {
	return models.ReminderRequest{
		NoteID:    note.ID,
		FireAt:    *note.Reminder,
		Recipient: recipient,
		Message:   reminderMessage(note),
	}
}

func (s *noteService) putCached(ctx context.Context, note models.Note) {
	if err := s.cache.Put(ctx, note.OwnerID, note); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("note_id", note.ID).Msg("note cache put failed")
	}
}

func reminderMessage(note models.Note) string {
	return fmt.Sprintf("Reminder for your note %q\n\n%s", note.Title, note.Description)
}

func filterByState(notes []models.Note, state models.NoteState) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if state == "" || n.State == state {
			out = append(out, n)
		}
	}
	return out
}
