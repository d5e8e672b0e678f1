package models

// Category summarizes one post category. PostCount is derived from the post
// list and must equal the number of posts whose Category field matches Name.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Color     string `json:"color"`
	PostCount int    `json:"post_count"`
}
