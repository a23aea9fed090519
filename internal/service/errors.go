package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")

	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrUnauthorized        = errors.New("could not validate credentials")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
