// Package contact validates a contact-form submission, checks the visitor's
// human-verification token and hands the message to an email relay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status is the single human-readable line shown under the form.
type Status string

const (
	StatusSent                 Status = "Message sent successfully!"
	StatusVerificationRequired Status = "verification required"
	StatusVerificationFailed   Status = "verification failed, please complete the check again"
	StatusInvalid              Status = "Please provide your name, a valid email and a message."
	StatusFailed               Status = "Failed to send. Please try again."
)

var (
	ErrNoToken       = errors.New("contact: verification token missing")
	ErrRejected      = errors.New("contact: verification rejected")
	ErrNotConfigured = errors.New("contact: relay not configured")
)

const DefaultTimeout = 10 * time.Second

// Message is what reaches the site owner.
type Message struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Submission is a message plus the token from the verification widget.
type Submission struct {
	Message
	Token string
}

// Verifier checks a human-verification token. It returns ErrRejected (wrapped)
// for missing, invalid or expired tokens.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// Relay delivers a message. Any error is a failed send; nothing is retried.
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

// Result of one submission attempt.
type Result struct {
	OK     bool
	Status Status
	Err    error
}

// Service runs the submission flow.
type Service struct {
	Verifier Verifier
	Relay    Relay
	Timeout  time.Duration

	validate *validator.Validate
}

func NewService(v Verifier, r Relay) *Service {
	return &Service{
		Verifier: v,
		Relay:    r,
		Timeout:  DefaultTimeout,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Submit checks the token locally first, so a missing token never costs a
// network call. Then fields, then the verifier, then one relay attempt.
func (s *Service) Submit(ctx context.Context, sub Submission, remoteIP string) Result {
	if strings.TrimSpace(sub.Token) == "" {
		return Result{Status: StatusVerificationRequired, Err: ErrNoToken}
	}

	msg := Message{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Message: strings.TrimSpace(sub.Message.Message),
	}
	if err := s.validator().Struct(msg); err != nil {
		return Result{Status: StatusInvalid, Err: err}
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Verifier.Verify(ctx, sub.Token, remoteIP); err != nil {
		log.Printf("contact: verification failed: %v", err)
		return Result{Status: StatusVerificationFailed, Err: err}
	}

	if err := s.Relay.Send(ctx, msg); err != nil {
		log.Printf("contact: relay failed: %v", err)
		return Result{Status: StatusFailed, Err: fmt.Errorf("relay: %w", err)}
	}

	log.Printf("contact: message relayed for %s", msg.Email)
	return Result{OK: true, Status: StatusSent}
}

func (s *Service) validator() *validator.Validate {
	if s.validate == nil {
		s.validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return s.validate
}
