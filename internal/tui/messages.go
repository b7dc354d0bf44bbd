package tui

import (
	"github.com/MKhiriev/go-chain-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// pageResultMsg carries the result of a collaborator call together with the
// page generation it was started on.
type pageResultMsg struct {
	gen uint64
	msg tea.Msg
}

type accountsLoadedMsg struct {
	accounts []models.Account
	err      error
}

type accountActivatedMsg struct {
	account models.Account
	err     error
}

type accountImportedMsg struct {
	account models.Account
	err     error
}

type mnemonicGeneratedMsg struct {
	mnemonic string
	err      error
}

type networkSelectedMsg struct {
	network models.Network
	err     error
}

type entriesLoadedMsg struct {
	entries []models.AddressBookEntry
	err     error
}

type entryFoundMsg struct {
	entry models.AddressBookEntry
	err   error
}

type entrySavedMsg struct {
	entry models.AddressBookEntry
	err   error
}

type entryDeletedMsg struct {
	label string
	err   error
}

type messageSignedMsg struct {
	signature string
	err       error
}

type balanceLoadedMsg struct {
	balance models.Balance
	err     error
}

type trackStartedMsg struct {
	hash string
	err  error
}

type copiedMsg struct {
	text string
	err  error
}

// workerMsg carries one value received from the worker channel.
type workerMsg struct {
	payload any
}

type workerClosedMsg struct{}

func resultErr(msg tea.Msg) error {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		return msg.err
	case accountActivatedMsg:
		return msg.err
	case accountImportedMsg:
		return msg.err
	case mnemonicGeneratedMsg:
		return msg.err
	case networkSelectedMsg:
		return msg.err
	case entriesLoadedMsg:
		return msg.err
	case entryFoundMsg:
		return msg.err
	case entrySavedMsg:
		return msg.err
	case entryDeletedMsg:
		return msg.err
	case messageSignedMsg:
		return msg.err
	case balanceLoadedMsg:
		return msg.err
	case trackStartedMsg:
		return msg.err
	}
	return nil
}
