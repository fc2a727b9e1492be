package domain

import "time"

// ProfileRecord is a computed flavour profile together with its provenance.
type ProfileRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// URL is where the page was read from (URL or file path).
	URL string `json:"url"`

	// Title is the product name.
	Title string `json:"title"`

	// Flag and Digits are the raw inputs the profile was computed from.
	Flag   string `json:"flag"`
	Digits string `json:"digits"`

	// Votes is the number of community votes, or VotesUnknown.
	Votes int `json:"votes"`

	// Profile is the normalised distribution.
	Profile FlavourProfile `json:"profile"`

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the record was last recomputed.
	UpdatedAt time.Time `json:"updated_at"`
}
