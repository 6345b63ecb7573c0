package model

import "github.com/google/uuid"

// NewAnonymousID mints a random item id for instances whose JSON omits
// stable string ids. Items within a single instance still need unique
// ids for demand bookkeeping and solution export even when the source
// data has none.
func NewAnonymousID() string {
	return uuid.NewString()
}
