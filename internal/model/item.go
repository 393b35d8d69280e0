package model

// Item is the domain model for a todo entry.
// It has no identity beyond its position in a list.
type Item struct {
	Title string
}
