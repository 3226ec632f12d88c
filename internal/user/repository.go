package user

import (
	"context"

	"github.com/google/uuid"

	User "github.com/rahuljangu01/NEXUS/internal/user/model"
)

// UserRepository is the read side of the profile collaborator. The
// presence/connection core never mutates profile fields; profile edits
// live behind the REST layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)

	// Search users by name prefix (for adding contacts)
	SearchUsers(ctx context.Context, query string, limit int) ([]*User.User, error)
}
