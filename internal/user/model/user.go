package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Email = unique login identity
	Email string `bun:",unique,notnull"`

	// Name = display name shown in chats and connection lists
	Name       string `bun:",notnull"`
	Department string `bun:",null"`
	PhotoURL   string `bun:"photo_url,null"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
