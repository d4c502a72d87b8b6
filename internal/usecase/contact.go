package usecase

import (
	"context"
	"strings"

	"ggenius-website/internal/domain"
	"ggenius-website/pkg/apperror"
	"ggenius-website/pkg/logger"
	"ggenius-website/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// contactRules maps each failing "Field.tag" to the reason shown to the caller.
var contactRules = map[string]error{
	"Email.required":    domain.ErrInvalidEmail,
	"Email.email":       domain.ErrInvalidEmail,
	"Interest.interest": domain.ErrUnknownInterest,
	"Message.min":       domain.ErrMessageTooShort,
	"Message.max":       domain.ErrMessageTooLong,
}

type contactUsecase struct {
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. validate must have the
// "interest" tag registered (see validation.RegisterValidators).
func NewContactUsecase(validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		validate: validate,
	}
}

// Submit validates the contact request. Accepted submissions are only logged;
// nothing is stored and no notification is sent.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	if req == nil {
		return nil, apperror.Validation(domain.ErrInvalidBody, nil)
	}

	sub := normalizeContact(req)

	if err := uc.validate.StructCtx(ctx, sub); err != nil {
		errs := validation.MapErrors(err, contactRules)
		return nil, apperror.Validation(errs[0], validation.Messages(errs))
	}

	logger.Log.InfoContext(ctx, "New contact submission",
		"email", sub.Email,
		"interest", sub.Interest,
		"newsletter", sub.Newsletter,
	)

	return sub, nil
}

func normalizeContact(req *domain.ContactRequest) *domain.ContactSubmission {
	sub := &domain.ContactSubmission{
		Email:      strings.TrimSpace(req.Email),
		Interest:   req.Interest,
		Message:    strings.TrimSpace(req.Message),
		Newsletter: true,
	}
	if req.Newsletter != nil {
		sub.Newsletter = *req.Newsletter
	}
	if req.GameID != nil {
		if id := strings.TrimSpace(*req.GameID); id != "" {
			sub.GameID = &id
		}
	}
	return sub
}
