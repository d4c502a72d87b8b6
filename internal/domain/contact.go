package domain

import (
	"context"
	"errors"
)

// Interest categories accepted by the contact form.
const (
	InterestTournaments     = "tournaments"
	InterestAICoaching      = "ai_coaching"
	InterestTeamBuilding    = "team_building"
	InterestNFTRewards      = "nft_rewards"
	InterestContentCreation = "content_creation"
	InterestBetaTesting     = "beta_testing"
)

// AllowedInterests is the fixed set of interest categories.
var AllowedInterests = []string{
	InterestTournaments,
	InterestAICoaching,
	InterestTeamBuilding,
	InterestNFTRewards,
	InterestContentCreation,
	InterestBetaTesting,
}

// Message length bounds, counted in characters after trimming.
// ContactSubmission.Message carries the same numbers in its validate tag.
const (
	MessageMinLength = 10
	MessageMaxLength = 1000
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrUnknownInterest = errors.New("unknown interest category")
	ErrMessageTooShort = errors.New("message too short")
	ErrMessageTooLong  = errors.New("message too long")
	ErrInvalidBody     = errors.New("invalid request body")
	ErrPageResolution  = errors.New("page resolution failed")
	ErrTooManyRequests = errors.New("too many submissions, please try again later")
)

// Acknowledgment texts returned for an accepted submission.
const (
	ContactAckMessage  = "Thank you for your interest in GGenius! We will get in touch with you shortly."
	ContactAckNextStep = "Watch your inbox for an email with early access details"
)

// ContactRequest is the raw contact form body as decoded from JSON.
// Newsletter is a pointer so an omitted field can default to true.
type ContactRequest struct {
	Email      string  `json:"email" example:"player@example.com"`
	GameID     *string `json:"game_id,omitempty" example:"123456789"`
	Interest   string  `json:"interest" example:"tournaments"`
	Message    string  `json:"message" example:"I would like to join the next tournament."`
	Newsletter *bool   `json:"newsletter,omitempty" example:"true"`
}

// ContactSubmission is a normalised submission. It lives for a single request.
type ContactSubmission struct {
	Email      string `validate:"required,email"`
	GameID     *string
	Interest   string `validate:"interest"`
	Message    string `validate:"min=10,max=1000"` // MessageMinLength, MessageMaxLength
	Newsletter bool
}

// ContactUsecase validates contact form submissions.
type ContactUsecase interface {
	// Submit normalises and validates req. It returns the accepted submission
	// or an *apperror.AppError wrapping one of the Err* sentinels.
	Submit(ctx context.Context, req *ContactRequest) (*ContactSubmission, error)
}
