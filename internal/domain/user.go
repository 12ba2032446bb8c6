package domain

// ViewerID is the local ID of the single user that owns the todo list.
const ViewerID = "me"

// User represents the viewer of the todo list.
type User struct {
	ID   string
	Name string
}
