package models

import "time"

// Banner is the document shape shared by the hero and offer banner
// collections. Each holds a single image; creating a new banner replaces
// all existing ones of the same kind.
type Banner struct {
	ID        int64     `bson:"_id" json:"id"`
	ImageURL  string    `bson:"imageUrl" json:"imageUrl"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
