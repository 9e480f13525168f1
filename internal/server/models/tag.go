package models

// Tag is a label attachable to offers for search and categorization.
type Tag struct {
	ID   string
	Name string
}
