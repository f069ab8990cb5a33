package entity

import "time"

type User struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

// UserLoginData is the identity carried by an authenticated session.
type UserLoginData struct {
	ID    int64
	Email string
}
