package models

// Category represents a shared tag like "Woodworking" or "Gardening".
// Categories are global, not owned by a project: the project_category
// join table links them, so deleting a project never deletes a category.
type Category struct {
	ID   int
	Name string
}
