// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// PageKind enumerates the screens of the terminal UI.
type PageKind int

const (
	PageHome PageKind = iota
	PageAccounts
	PageAccount
	PageImportAccount
	PageNetworks
	PageAddressBook
	PageSignMessage
	PageBalance
	PageTrackTx
)

var pageTitles = map[PageKind]string{
	PageHome:          "Home",
	PageAccounts:      "Accounts",
	PageAccount:       "Account",
	PageImportAccount: "Import account",
	PageNetworks:      "Networks",
	PageAddressBook:   "Address book",
	PageSignMessage:   "Sign message",
	PageBalance:       "Balance",
	PageTrackTx:       "Track transaction",
}

func (k PageKind) String() string {
	if title, ok := pageTitles[k]; ok {
		return title
	}
	return "Unknown"
}

// Page identifies one entry of the navigation stack. It is comparable so
// tests and the control loop can match pages with ==.
type Page struct {
	Kind PageKind
	// Address is set for pages bound to an account.
	Address string
}

func HomePage() Page { return Page{Kind: PageHome} }
func AccountsPage() Page { return Page{Kind: PageAccounts} }
func AccountPage(address string) Page { return Page{Kind: PageAccount, Address: address} }
func ImportAccountPage() Page { return Page{Kind: PageImportAccount} }
func NetworksPage() Page { return Page{Kind: PageNetworks} }
func AddressBookPage() Page { return Page{Kind: PageAddressBook} }
func SignMessagePage(address string) Page { return Page{Kind: PageSignMessage, Address: address} }
func BalancePage(address string) Page { return Page{Kind: PageBalance, Address: address} }
func TrackTxPage() Page { return Page{Kind: PageTrackTx} }

// Title is the heading shown at the top of the left pane.
func (p Page) Title() string {
	if p.Address == "" {
		return p.Kind.String()
	}
	return p.Kind.String() + " " + shortAddress(p.Address)
}

// HasInput reports whether the page edits a text buffer. Pages without one
// treat letter keys as hot keys.
func (p Page) HasInput() bool {
	switch p.Kind {
	case PageImportAccount, PageAddressBook, PageSignMessage, PageBalance, PageTrackTx:
		return true
	default:
		return false
	}
}

func (p Page) placeholder() string {
	switch p.Kind {
	case PageImportAccount:
		return "label|twelve or twenty-four mnemonic words"
	case PageAddressBook:
		return "label, or \"label 0xaddress [note]\" + ctrl+s"
	case PageSignMessage:
		return "message to sign"
	case PageBalance:
		return "0x address (empty: active account)"
	case PageTrackTx:
		return "0x transaction hash"
	default:
		return ""
	}
}
