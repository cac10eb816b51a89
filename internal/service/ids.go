package service

import (
	"strings"

	"github.com/google/uuid"
)

const ticketIDLength = 8

// NewTicketID returns a short opaque token: the first eight hex digits of a
// random UUID. Collisions are not checked.
func NewTicketID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:ticketIDLength]
}
