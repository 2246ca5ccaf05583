package service

import "errors"

var (
	ErrEmailTaken = errors.New("Email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	ErrPhotoNotFound     = errors.New("Photo not found")
	ErrNoUpdatableFields = errors.New("No fields to update")
	ErrNotAnImage        = errors.New("Only image files can be uploaded")
	ErrFileTooLarge      = errors.New("File size exceeds the 5MB limit")
)
