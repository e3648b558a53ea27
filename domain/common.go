package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetSession     = "session not found"

	MessageSuccessCreateSession = "session created successfully"

	ErrSessionNotFound = errors.New("session not found")
)

type (
	CreateSessionResponse struct {
		SessionID string `json:"session_id"`
	}
)
