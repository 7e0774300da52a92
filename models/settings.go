package models

import "time"

// DefaultFilterRadius is the proximity-search radius in kilometers applied
// when a search supplies a center point but no radius.
const DefaultFilterRadius = 5.0

// SiteSettings is a singleton document (fixed id 1), created lazily on first
// access and changed only through the admin settings endpoint.
type SiteSettings struct {
	ID           int64     `bson:"_id" json:"id"`
	FilterRadius float64   `bson:"filterRadius" json:"filterRadius"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpdateSiteSettingsRequest struct {
	FilterRadius *float64 `json:"filterRadius"`
}
