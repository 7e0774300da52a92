package models

import "time"

const (
	PropertyForRent = "rent"
	PropertyForSell = "sell"

	OwnershipManagement  = "management"
	OwnershipDirectOwner = "direct_owner"
)

var (
	PropertyForValues = []string{PropertyForRent, PropertyForSell}
	OwnershipValues   = []string{OwnershipManagement, OwnershipDirectOwner}
	AreaUnitValues    = []string{"sqft", "sqm", "marla", "kanal"}
)

// LocationRef embeds the id and name of a state, district or city so listings
// can be filtered and rendered without extra lookups.
type LocationRef struct {
	ID   int64  `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type TypeRef struct {
	ID   int64  `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type FeatureRef struct {
	ID   int64  `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type PropertyImage struct {
	ID        int64     `bson:"id" json:"id"`
	URL       string    `bson:"url" json:"url"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Property struct {
	ID          int64  `bson:"_id" json:"id"`
	PropertyFor string `bson:"propertyFor" json:"propertyFor"`
	Ownership   string `bson:"ownership" json:"ownership"`

	ContactName    string `bson:"contactName" json:"contactName"`
	WhatsappNumber string `bson:"whatsappNumber" json:"whatsappNumber"`
	PhoneNumber    string `bson:"phoneNumber" json:"phoneNumber"`
	Email          string `bson:"email" json:"email"`

	State    LocationRef `bson:"state" json:"state"`
	District LocationRef `bson:"district" json:"district"`
	City     LocationRef `bson:"city" json:"city"`

	Title string `bson:"title" json:"title"`
	// Price is free text: "2500000", "25 Lakh", "Negotiable".
	Price        string  `bson:"price" json:"price"`
	PropertyType TypeRef `bson:"propertyType" json:"propertyType"`

	Latitude  *float64 `bson:"latitude" json:"latitude"`
	Longitude *float64 `bson:"longitude" json:"longitude"`

	Bedrooms  int    `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int    `bson:"bathrooms" json:"bathrooms"`
	Area      int    `bson:"area" json:"area"`
	AreaUnit  string `bson:"areaUnit" json:"areaUnit"`

	Description           string       `bson:"description" json:"description"`
	Features              []FeatureRef `bson:"features" json:"features"`
	GoogleMapsURL         string       `bson:"googleMapsUrl,omitempty" json:"googleMapsUrl,omitempty"`
	GoogleEmbeddedMapLink string       `bson:"googleEmbeddedMapLink,omitempty" json:"googleEmbeddedMapLink,omitempty"`
	YoutubeVideoLink      string       `bson:"youtubeVideoLink,omitempty" json:"youtubeVideoLink,omitempty"`
	NearbyPlaces          []string     `bson:"nearbyPlaces" json:"nearbyPlaces"`
	BuiltYear             int          `bson:"builtYear" json:"builtYear"`
	Furnishing            string       `bson:"furnishing" json:"furnishing"`
	ParkingSpaces         int          `bson:"parkingSpaces" json:"parkingSpaces"`

	Images []PropertyImage `bson:"images" json:"images"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreatePropertyRequest carries state/district/city as names; the handler
// resolves or creates the hierarchy on the fly.
type CreatePropertyRequest struct {
	PropertyFor    string   `json:"propertyFor"`
	Ownership      string   `json:"ownership"`
	ContactName    string   `json:"contactName"`
	WhatsappNumber string   `json:"whatsappNumber"`
	PhoneNumber    string   `json:"phoneNumber"`
	Email          string   `json:"email"`
	State          string   `json:"state"`
	District       string   `json:"district"`
	City           string   `json:"city"`
	Title          string   `json:"title"`
	Price          string   `json:"price"`
	PropertyType   int64    `json:"propertyType"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	Area           int      `json:"area"`
	AreaUnit       string   `json:"areaUnit"`
	Description    string   `json:"description"`
	Features       []int64  `json:"features"`

	GoogleMapsURL         string   `json:"googleMapsUrl"`
	GoogleEmbeddedMapLink string   `json:"googleEmbeddedMapLink"`
	YoutubeVideoLink      string   `json:"youtubeVideoLink"`
	NearbyPlaces          []string `json:"nearbyPlaces"`
	BuiltYear             int      `json:"builtYear"`
	Furnishing            string   `json:"furnishing"`
	ParkingSpaces         int      `json:"parkingSpaces"`
	ImageURLs             []string `json:"imageUrls"`
}

// UpdatePropertyRequest uses pointers so omitted fields stay untouched.
type UpdatePropertyRequest struct {
	PropertyFor    *string  `json:"propertyFor"`
	Ownership      *string  `json:"ownership"`
	ContactName    *string  `json:"contactName"`
	WhatsappNumber *string  `json:"whatsappNumber"`
	PhoneNumber    *string  `json:"phoneNumber"`
	Email          *string  `json:"email"`
	State          *string  `json:"state"`
	District       *string  `json:"district"`
	City           *string  `json:"city"`
	Title          *string  `json:"title"`
	Price          *string  `json:"price"`
	PropertyType   *int64   `json:"propertyType"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Bedrooms       *int     `json:"bedrooms"`
	Bathrooms      *int     `json:"bathrooms"`
	Area           *int     `json:"area"`
	AreaUnit       *string  `json:"areaUnit"`
	Description    *string  `json:"description"`
	Features       []int64  `json:"features"`

	GoogleMapsURL         *string  `json:"googleMapsUrl"`
	GoogleEmbeddedMapLink *string  `json:"googleEmbeddedMapLink"`
	YoutubeVideoLink      *string  `json:"youtubeVideoLink"`
	NearbyPlaces          []string `json:"nearbyPlaces"`
	BuiltYear             *int     `json:"builtYear"`
	Furnishing            *string  `json:"furnishing"`
	ParkingSpaces         *int     `json:"parkingSpaces"`
	ImageURLs             []string `json:"imageUrls"`
}
