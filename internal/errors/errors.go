package errors

import (
	"encoding/json"
	"fmt"
)

// Retryable marks errors the caller may safely retry. A retry re-runs the
// full check-then-act sequence, it never resumes mid-commit.
type Retryable interface {
	Retryable() bool
}

// ValidationErr signals bad input that must be corrected before retrying.
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewValidationErr(target string, msg string) error {
	return &ValidationErr{target: target, message: msg}
}

// EntryNotFoundErr signals that the requested record does not exist.
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// AlreadyConvertedErr signals that the enquiry is already a client. It
// carries the client id so a repeated conversion call stays harmless from
// the caller's perspective.
type AlreadyConvertedErr struct {
	EnquiryID string
	ClientID  string
}

func (e *AlreadyConvertedErr) Error() string {
	return fmt.Sprintf("enquiry %s is already converted to client %s", e.EnquiryID, e.ClientID)
}

func (e *AlreadyConvertedErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message  string `json:"message"`
		ClientID string `json:"clientId"`
	}{Message: e.Error(), ClientID: e.ClientID})
}

// AssignmentRequiredErr signals a conversion attempt with no team member
// selected. The engine never defaults the assignment silently.
type AssignmentRequiredErr struct{}

func (e *AssignmentRequiredErr) Error() string {
	return "a team member must be assigned before conversion"
}

// ConflictUnresolvedErr signals that the reconciler could not locate the
// client which won the uniqueness race. Transient, safe to retry.
type ConflictUnresolvedErr struct {
	Email string
}

func (e *ConflictUnresolvedErr) Error() string {
	return fmt.Sprintf("no client holds email %s yet, reconciliation must be retried", e.Email)
}

func (e *ConflictUnresolvedErr) Retryable() bool {
	return true
}

func (e *ConflictUnresolvedErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message   string `json:"message"`
		Retryable bool   `json:"retryable"`
	}{Message: e.Error(), Retryable: true})
}

// TransportErr wraps a downstream store failure. Safe to retry with backoff,
// the enquiry is guaranteed to be in its pre-attempt state.
type TransportErr struct {
	cause error
}

func (e *TransportErr) Error() string {
	return fmt.Sprintf("downstream store unavailable - %v", e.cause)
}

func (e *TransportErr) Unwrap() error {
	return e.cause
}

func (e *TransportErr) Retryable() bool {
	return true
}

func (e *TransportErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message   string `json:"message"`
		Retryable bool   `json:"retryable"`
	}{Message: e.Error(), Retryable: true})
}

func NewTransportErr(cause error) error {
	return &TransportErr{cause: cause}
}

// UniqueViolationErr is the typed uniqueness-violation signal raised by the
// repositories when a concurrent commit won the email. The orchestrator
// catches it and hands off to the reconciler; it never reaches a caller.
type UniqueViolationErr struct {
	Email string
}

func (e *UniqueViolationErr) Error() string {
	return fmt.Sprintf("client with email %s already exists", e.Email)
}
