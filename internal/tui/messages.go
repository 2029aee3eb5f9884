package tui

import (
	"github.com/Freeman45/encrypted-Diary/models"
)

// sessionReadyMsg reports the outcome of the connect-and-unlock command:
// wallet handshake, key derivation and the initial entry load.
type sessionReadyMsg struct {
	address string
	err     error
}

type entrySavedMsg struct {
	entry models.DiaryEntry
	err   error
}

type entryDeletedMsg struct {
	err error
}

// submitDoneMsg reports the outcome of an on-chain submission. A failure
// here is never fatal: the entry is already persisted locally.
type submitDoneMsg struct {
	entryID string
	txHash  string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
