package blogs

import (
	"ProjectBlog/pkg/response"
	"net/http"
)

var (
	ErrInvalidPostInput = response.NewError(http.StatusBadRequest, "Invalid input. Ensure title, content, and a valid category are provided.")
	ErrInvalidCategory  = response.NewError(http.StatusBadRequest, "Invalid category selected.")
	ErrCheckCategory    = response.NewError(http.StatusInternalServerError, "Database error checking category")
	ErrCreateCategory   = response.NewError(http.StatusInternalServerError, "Error creating category")
	ErrCreateBlog       = response.NewError(http.StatusInternalServerError, "Error creating blog post")
	ErrBlogNotFound     = response.NewError(http.StatusNotFound, "Blog not found")
	ErrMissingFields    = response.NewError(http.StatusBadRequest, "All required fields must be filled")
	ErrAddComment       = response.NewError(http.StatusInternalServerError, "Error adding comment")
	ErrAddReply         = response.NewError(http.StatusInternalServerError, "Error adding reply")
	ErrNoFileUploaded   = response.NewError(http.StatusBadRequest, "No file uploaded")
	ErrInvalidFileType  = response.NewError(http.StatusBadRequest, "Only image files are allowed")
	ErrFileTooLarge     = response.NewError(http.StatusBadRequest, "File too large. Maximum size is 5MB.")
	ErrFailedToUpload   = response.NewError(http.StatusInternalServerError, "Failed to upload file")
	ErrCategoryExists   = response.NewError(http.StatusConflict, "category already exists")
	ErrInternalServer   = response.NewError(http.StatusInternalServerError, "Internal Server Error")
)
