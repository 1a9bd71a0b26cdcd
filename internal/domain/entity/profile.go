package entity

import "time"

// MaxFeaturedLinks caps how many labeled link/media/text triples a profile
// may carry.
const MaxFeaturedLinks = 3

// FeaturedLink is one labeled link/media/text triple on a profile.
type FeaturedLink struct {
	Label    string `json:"label" validate:"required,max=80"`
	LinkURL  string `json:"linkUrl" validate:"omitempty,url"`
	MediaURL string `json:"mediaUrl" validate:"omitempty,url"`
	Text     string `json:"text" validate:"max=500"`
}

// ProfileContent holds the editable fields of a profile. It is overwritten
// as a whole by the resolved auction winner.
type ProfileContent struct {
	Title    string         `json:"title" validate:"required,max=120"`
	MediaURL string         `json:"mediaUrl" validate:"omitempty,url"`
	Links    []FeaturedLink `json:"links" validate:"max=3,dive"`
}

// Profile is the entity shown for one rotation day. Profiles are append-only
// history: they are created at rollover and never deleted.
type Profile struct {
	Day     DayKey
	IsSet   bool
	Content ProfileContent
	Totals  EngagementTotals

	CreatedAt time.Time
	UpdatedAt time.Time
}
