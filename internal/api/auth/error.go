package auth

import (
	"ProjectBlog/pkg/response"
	"net/http"
)

var (
	ErrInvalidFullName       = response.NewError(http.StatusBadRequest, "Full name must include first and last name.")
	ErrInvalidEmailFormat    = response.NewError(http.StatusBadRequest, "Invalid email format.")
	ErrPasswordTooShort      = response.NewError(http.StatusBadRequest, "Password must be longer than 6 characters.")
	ErrPasswordMismatch      = response.NewError(http.StatusBadRequest, "Passwords do not match.")
	ErrEmailExistsOrDatabase = response.NewError(http.StatusBadRequest, "Email already exists or database error.")

	ErrDatabase          = response.NewError(http.StatusInternalServerError, "Database error.")
	ErrEmailNotFound     = response.NewError(http.StatusNotFound, "Email not found.")
	ErrIncorrectPassword = response.NewError(http.StatusUnauthorized, "Incorrect password.")

	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, "email already exists")
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
	ErrInternal           = response.NewError(http.StatusInternalServerError, "Internal Server Error")
)
