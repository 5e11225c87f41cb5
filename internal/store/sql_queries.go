package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

const (
	usersTable         = "users"
	notesTable         = "notes"
	collaboratorsTable = "note_collaborators"
	noteLabelsTable    = "note_labels"
	labelsTable        = "labels"
)

var (
	userColumns = []string{
		"id", "username", "password_hash", "first_name", "last_name",
		"email", "phone", "location", "is_superuser", "is_verified", "created_at",
	}
	noteColumns = []string{
		"id", "user_id", "title", "description", "color",
		"state", "reminder", "created_at", "modified_at",
	}
	collaboratorColumns = []string{"note_id", "user_id", "access_level", "granted_by", "created_at"}
	labelColumns        = []string{"id", "user_id", "name", "color", "created_at", "modified_at"}
)

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ─── users ───────────────────────────────────────────────────────────────────

func buildInsertUserQuery(d Dialect, user models.User) (string, []any, error) {
	return toSQL(d.builder().
		Insert(usersTable).
		Columns("username", "password_hash", "first_name", "last_name", "email", "phone", "location", "is_superuser", "is_verified", "created_at").
		Values(user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Email, user.Phone, user.Location, user.IsSuperuser, user.IsVerified, user.CreatedAt).
		Suffix("RETURNING id"))
}

func buildSelectUserQuery(d Dialect, where sq.Eq) (string, []any, error) {
	return toSQL(d.builder().Select(userColumns...).From(usersTable).Where(where))
}

func buildSelectUsersQuery(d Dialect) (string, []any, error) {
	return toSQL(d.builder().Select(userColumns...).From(usersTable).OrderBy("id"))
}

func buildVerifyUserQuery(d Dialect, userID int64) (string, []any, error) {
	return toSQL(d.builder().Update(usersTable).Set("is_verified", true).Where(sq.Eq{"id": userID}))
}

func buildDeleteUserQuery(d Dialect, userID int64) (string, []any, error) {
	return toSQL(d.builder().Delete(usersTable).Where(sq.Eq{"id": userID}))
}

// ─── notes ───────────────────────────────────────────────────────────────────

func buildInsertNoteQuery(d Dialect, note models.Note) (string, []any, error) {
	return toSQL(d.builder().
		Insert(notesTable).
		Columns("user_id", "title", "description", "color", "state", "reminder", "created_at", "modified_at").
		Values(note.OwnerID, note.Title, note.Description, note.Color, string(note.State), nullTime(note.Reminder), note.CreatedAt, note.ModifiedAt).
		Suffix("RETURNING id"))
}

func buildSelectNoteQuery(d Dialect, noteID int64, lock bool) (string, []any, error) {
	q := d.builder().Select(noteColumns...).From(notesTable).Where(sq.Eq{"id": noteID})
	if lock && d == DialectPostgres {
		q = q.Suffix("FOR UPDATE")
	}
	return toSQL(q)
}

func buildSelectNotesByOwnerQuery(d Dialect, ownerID int64) (string, []any, error) {
	return toSQL(d.builder().
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("modified_at DESC", "id DESC"))
}

func buildSelectSharedNotesQuery(d Dialect, userID int64) (string, []any, error) {
	columns := make([]string, 0, len(noteColumns)+1)
	for _, c := range noteColumns {
		columns = append(columns, "n."+c)
	}
	columns = append(columns, "c.access_level")

	return toSQL(d.builder().
		Select(columns...).
		From(notesTable+" n").
		Join(collaboratorsTable+" c ON c.note_id = n.id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("n.modified_at DESC", "n.id DESC"))
}

func buildUpdateNoteQuery(d Dialect, note models.Note) (string, []any, error) {
	return toSQL(d.builder().
		Update(notesTable).
		Set("title", note.Title).
		Set("description", note.Description).
		Set("color", note.Color).
		Set("state", string(note.State)).
		Set("reminder", nullTime(note.Reminder)).
		Set("modified_at", note.ModifiedAt).
		Where(sq.Eq{"id": note.ID}))
}

func buildDeleteNoteQuery(d Dialect, noteID int64) (string, []any, error) {
	return toSQL(d.builder().Delete(notesTable).Where(sq.Eq{"id": noteID}))
}

// ─── collaborators ───────────────────────────────────────────────────────────

func buildSelectCollaboratorsQuery(d Dialect, noteID int64, userIDs ...int64) (string, []any, error) {
	where := sq.Eq{"note_id": noteID}
	if len(userIDs) > 0 {
		where["user_id"] = userIDs
	}
	return toSQL(d.builder().Select(collaboratorColumns...).From(collaboratorsTable).Where(where).OrderBy("created_at", "user_id"))
}

func buildInsertCollaboratorsQuery(d Dialect, grants []models.Collaborator) (string, []any, error) {
	q := d.builder().Insert(collaboratorsTable).Columns(collaboratorColumns...)
	for _, g := range grants {
		q = q.Values(g.NoteID, g.UserID, string(g.AccessLevel), g.GrantedBy, g.CreatedAt)
	}
	return toSQL(q)
}

func buildDeleteCollaboratorsQuery(d Dialect, noteID int64, userIDs []int64) (string, []any, error) {
	where := sq.Eq{"note_id": noteID}
	if userIDs != nil {
		where["user_id"] = userIDs
	}
	return toSQL(d.builder().Delete(collaboratorsTable).Where(where))
}

// ─── note labels ─────────────────────────────────────────────────────────────

func buildSelectNoteLabelsQuery(d Dialect, noteID int64) (string, []any, error) {
	return toSQL(d.builder().Select("label_id").From(noteLabelsTable).Where(sq.Eq{"note_id": noteID}).OrderBy("label_id"))
}

func buildInsertNoteLabelsQuery(d Dialect, noteID int64, labelIDs []int64) (string, []any, error) {
	q := d.builder().Insert(noteLabelsTable).Columns("note_id", "label_id")
	for _, id := range labelIDs {
		q = q.Values(noteID, id)
	}
	return toSQL(q)
}

func buildDeleteNoteLabelsQuery(d Dialect, noteID int64, labelIDs []int64) (string, []any, error) {
	where := sq.Eq{"note_id": noteID}
	if labelIDs != nil {
		where["label_id"] = labelIDs
	}
	return toSQL(d.builder().Delete(noteLabelsTable).Where(where))
}

// ─── labels ──────────────────────────────────────────────────────────────────

func buildInsertLabelQuery(d Dialect, label models.Label) (string, []any, error) {
	return toSQL(d.builder().
		Insert(labelsTable).
		Columns("user_id", "name", "color", "created_at", "modified_at").
		Values(label.OwnerID, label.Name, label.Color, label.CreatedAt, label.ModifiedAt).
		Suffix("RETURNING id"))
}

func buildSelectLabelsQuery(d Dialect, where sq.Eq) (string, []any, error) {
	return toSQL(d.builder().Select(labelColumns...).From(labelsTable).Where(where).OrderBy("id"))
}

func buildUpdateLabelQuery(d Dialect, label models.Label) (string, []any, error) {
	return toSQL(d.builder().
		Update(labelsTable).
		Set("name", label.Name).
		Set("color", label.Color).
		Set("modified_at", label.ModifiedAt).
		Where(sq.Eq{"id": label.ID, "user_id": label.OwnerID}))
}

func buildDeleteLabelQuery(d Dialect, ownerID, labelID int64) (string, []any, error) {
	return toSQL(d.builder().Delete(labelsTable).Where(sq.Eq{"id": labelID, "user_id": ownerID}))
}
