package models

// AccessLevel is the level of a collaborator grant.
type AccessLevel string

const (
	AccessReadOnly  AccessLevel = "read_only"
	AccessReadWrite AccessLevel = "read_write"
)

// Valid reports whether l is a known access level.
func (l AccessLevel) Valid() bool {
	return l == AccessReadOnly || l == AccessReadWrite
}

// AccessRole is the relation of a user to a note.
type AccessRole int

const (
	RoleNone AccessRole = iota
	RoleCollaborator
	RoleOwner
)

func (r AccessRole) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleCollaborator:
		return "collaborator"
	default:
		return "none"
	}
}

// Access is the effective permission of a user on a note.
// Level is set only for [RoleCollaborator].
type Access struct {
	Role  AccessRole
	Level AccessLevel
}

// IsOwner reports whether the user owns the note.
func (a Access) IsOwner() bool {
	return a.Role == RoleOwner
}

// CanRead reports whether the user may read the note.
func (a Access) CanRead() bool {
	return a.Role == RoleOwner || a.Role == RoleCollaborator
}

// CanWrite reports whether the user may edit the note fields.
func (a Access) CanWrite() bool {
	return a.Role == RoleOwner || (a.Role == RoleCollaborator && a.Level == AccessReadWrite)
}
