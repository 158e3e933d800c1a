package hiscores

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrEmptyPlayer = errors.New("player name is empty")

type InvalidAccountTypeError struct {
	Value string
}

func (e *InvalidAccountTypeError) Error() string {
	return "invalid account type " + strconv.Quote(e.Value) + ", valid types are N, IM, UIM, HIM and S"
}

type PlayerNotFoundError struct {
	Player      string
	AccountType AccountType
}

func (e *PlayerNotFoundError) Error() string {
	return "player " + strconv.Quote(e.Player) + " not found on the " + e.AccountType.String() + " hiscores"
}

// UpstreamError is any non-200, non-404 response from the hiscores.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return "hiscores returned status " + strconv.Itoa(e.StatusCode)
}

// TransportError wraps a failure to get any response at all: DNS, TLS,
// connection resets, timeouts and cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "hiscores request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return "malformed hiscores payload: " + e.Reason
}

func malformed(format string, args ...interface{}) error {
	return &MalformedPayloadError{Reason: fmt.Sprintf(format, args...)}
}

type Category string

const (
	SkillCategory    Category = "skill"
	ActivityCategory Category = "activity"
)

type UnknownCategoryError struct {
	Category Category
	Name     string
}

func (e *UnknownCategoryError) Error() string {
	return "unknown " + string(e.Category) + " " + strconv.Quote(e.Name)
}

type InvalidFieldError struct {
	Category Category
	Field    string
}

func (e *InvalidFieldError) Error() string {
	return "invalid " + string(e.Category) + " field " + strconv.Quote(e.Field)
}
