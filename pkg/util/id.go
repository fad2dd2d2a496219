package util

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a unique identifier with a short type prefix, e.g.
// "v-9f2c...". The original system derived ids from the current time, which
// collides under rapid successive calls; UUIDs do not.
func NewID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
