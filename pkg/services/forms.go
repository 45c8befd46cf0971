package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FormKind names one of the site's forms
type FormKind string

const (
	FormContact    FormKind = "contact"
	FormClub       FormKind = "club"
	FormNewsletter FormKind = "newsletter"
)

// ErrInvalidForm is matched by every ValidationError
var ErrInvalidForm = errors.New("invalid form")

// ErrUnknownForm is returned for a form kind the site does not have
var ErrUnknownForm = errors.New("unknown form")

// ValidationError lists the fields that failed validation with a message each
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid form: %s", strings.Join(names, ", "))
}

// Is makes errors.Is(err, ErrInvalidForm) true
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidForm
}

// Submission acknowledges a simulated form submission
type Submission struct {
	Reference  string    `json:"reference"`
	Kind       FormKind  `json:"kind"`
	Name       string    `json:"name,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

var requiredFields = map[FormKind][]string{
	FormContact:    {"name", "email", "message"},
	FormClub:       {"name", "email", "tier"},
	FormNewsletter: {"email"},
}

// SubmitForm validates fields and pretends to send them. Nothing is stored or
// transmitted; the call only waits for the configured delay, honouring ctx.
func (s *Service) SubmitForm(ctx context.Context, kind FormKind, fields map[string]string) (Submission, error) {
	if err := s.ValidateForm(kind, fields); err != nil {
		return Submission{}, err
	}

	if delay := s.config.FormDelay; delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Submission{}, ctx.Err()
		}
	}

	sub := Submission{
		Reference:  uuid.NewString(),
		Kind:       kind,
		Name:       strings.TrimSpace(fields["name"]),
		ReceivedAt: time.Now(),
	}
	s.logger.Info("Simulated form submission", "kind", kind, "reference", sub.Reference)
	return sub, nil
}

// ValidateForm checks required fields, the email address and the club tier
func (s *Service) ValidateForm(kind FormKind, fields map[string]string) error {
	required, ok := requiredFields[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownForm, kind)
	}

	problems := make(map[string]string)
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			problems[name] = "This field is required."
		}
	}

	if email := strings.TrimSpace(fields["email"]); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			problems["email"] = "Please enter a valid email address."
		}
	}

	if kind == FormClub {
		if tier := strings.TrimSpace(fields["tier"]); tier != "" && !s.hasTier(tier) {
			problems["tier"] = "Please choose one of the membership tiers."
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}
	return nil
}

func (s *Service) hasTier(name string) bool {
	for _, t := range s.catalog.ClubTiers {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}
