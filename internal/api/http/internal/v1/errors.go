package v1

import "fmt"

const (
	CredentialsRequiredMessage = "Provider and API key are required"
	ProviderRequiredMessage    = "Provider query parameter is required (e.g., ?provider=mailchimp or ?provider=getresponse)"
	InvalidProviderMessage     = `Provider must be either "mailchimp" or "getresponse"`
	InvalidBodyMessage         = "Invalid request body"
	InternalErrorMessage       = "Internal server error"

	VerifiedMessage = "Connection verified successfully"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name ErrorResponse

type VerifyErrorResponse struct {
	Success   bool   `json:"success"`
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
} // @name VerifyErrorResponse

func notConnectedMessage(provider string) string {
	return fmt.Sprintf("No %s integration found. Please connect your account first.", provider)
}

func noActiveIntegrationMessage(provider string) string {
	return fmt.Sprintf("No active %s integration found. Please connect your account first.", provider)
}

func savedMessage(title string) string {
	return fmt.Sprintf("%s integration saved and validated successfully", title)
}
