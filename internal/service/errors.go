package service

import "errors"

var (
	// ErrEmptyEntry is returned when SaveEntry receives empty or
	// whitespace-only text.
	ErrEmptyEntry = errors.New("diary entry is empty")

	// ErrNoAccount is returned when an operation needs an unlocked session
	// and there is none.
	ErrNoAccount = errors.New("no wallet account is unlocked")

	// ErrEntryNotFound is returned when an operation targets an entry id
	// that is not in the session list.
	ErrEntryNotFound = errors.New("diary entry was not found")

	// ErrRemoteDisabled is returned by SubmitEntry when no diary contract
	// is configured for this session.
	ErrRemoteDisabled = errors.New("on-chain persistence is disabled")

	// ErrRemoteSubmission wraps provider failures during on-chain
	// submission. The entry is always kept locally regardless.
	ErrRemoteSubmission = errors.New("failed to submit entry on-chain")
)
