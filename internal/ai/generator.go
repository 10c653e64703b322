package ai

import (
	"context"
	"errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=ai_test

var (
	ErrDisabled    = errors.New("content generation is not configured")
	ErrRateLimited = errors.New("content generation rate limit reached")
	ErrEmptyResult = errors.New("model returned no text")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of a coach conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}

// Image is an inline image sent to the vision model.
type Image struct {
	MIMEType string
	Data     []byte
}

// Prompt is a single generation request. A non-nil Image routes it to the
// vision model.
type Prompt struct {
	System      string
	Text        string
	History     []Turn
	Image       *Image
	Temperature float32
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
