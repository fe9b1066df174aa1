package domain

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAvatar is assigned when a user is created without one.
const DefaultAvatar = "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp"

var ErrMissingUserData = errors.New("Missing required data")

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetAll(ctx context.Context) ([]User, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// NewUser builds an unsaved user; the repository assigns the id on insert.
func NewUser(username, email, avatar string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" {
		return nil, ErrMissingUserData
	}

	if avatar == "" {
		avatar = DefaultAvatar
	}

	return &User{
		Username: username,
		Email:    email,
		Avatar:   avatar,
	}, nil
}
