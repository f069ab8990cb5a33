package entity

import "time"

type Blog struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Body       string    `db:"body"`
	ImageURL   string    `db:"image_url"`
	Author     string    `db:"author"`
	CreatedAt  time.Time `db:"created_at"`
	CategoryID int64     `db:"category_id"`
	Tag        string    `db:"tag"`
	UserID     int64     `db:"user_id"`
}

// BlogView is a post joined with its category title and author name. The
// joined fields are empty when the reference is unset or dangling.
type BlogView struct {
	Blog
	CategoryTitle   string
	AuthorFirstName string
	AuthorLastName  string
}

type BlogCategory struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}
