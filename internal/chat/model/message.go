package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Every direct message belongs to exactly one connection; forwarding
	// creates a new row on the target connection, it never moves this one.
	ConnectionID uuid.UUID `bun:",notnull,type:uuid"`

	SenderID    uuid.UUID `bun:",notnull,type:uuid"`
	RecipientID uuid.UUID `bun:",notnull,type:uuid"`

	Content       string `bun:",null"`
	AttachmentURL string `bun:"attachment_url,null"`

	Pinned    bool `bun:",default:false"`
	Forwarded bool `bun:",default:false"`

	// Read flips exactly once, when the recipient acknowledges viewing
	// the conversation. Unread count = unread rows for the recipient.
	Read bool `bun:",default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
