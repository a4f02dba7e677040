package service

import "errors"

var (
	ErrCredentialsRequired = errors.New("provider and api key are required")
	ErrProviderRequired    = errors.New("provider is required")
	ErrInvalidProvider     = errors.New("invalid provider")

	ErrIntegrationNotFound = errors.New("integration not found")
	ErrNoActiveIntegration = errors.New("no active integration")
)
