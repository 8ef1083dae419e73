package model

import "time"

// Metadata carries bookkeeping timestamps persisted with every entity.
// There is no user identity in this system, so no created-by/modified-by.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
