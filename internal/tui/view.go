package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chain-keeper/models"
)

const helpQuit = "ctrl+c: quit"

func (m Model) body() Body {
	page := m.nav.CurrentPage()

	status := m.status
	if m.pending > 0 {
		status = m.spinner.View() + " working"
		if m.status != "" {
			status += "\n" + m.status
		}
	}

	var inputLine string
	if page.HasInput() {
		inputLine = m.input.View()
	}

	return Body{
		Navigation: m.nav,
		Price:      m.price,
		Network:    m.network,
		Account:    m.account,
		Status:     status,
		Error:      m.errText,
		Content:    m.content(page),
		InputLine:  inputLine,
		Help:       pageHelp(page),
	}
}

func (m Model) content(page Page) []string {
	switch page.Kind {
	case PageHome:
		labels := make([]string, len(homeMenu))
		for i, item := range homeMenu {
			labels[i] = item.label
		}
		return menuLines(labels, m.cursor)
	case PageAccounts:
		if len(m.accountList) == 0 {
			return []string{"no accounts yet, import one from Home"}
		}
		items := make([]string, len(m.accountList))
		for i, acc := range m.accountList {
			items[i] = fmt.Sprintf("%-16s %s", fitText(acc.Label, 16), acc.Address)
		}
		return menuLines(items, m.cursor)
	case PageAccount:
		return append(m.accountLines(page.Address), m.result...)
	case PageNetworks:
		items := make([]string, len(m.networks))
		for i, n := range m.networks {
			mark := " "
			if n.Name == m.network {
				mark = "*"
			}
			items[i] = fmt.Sprintf("%s %-12s chain %d  %s", mark, n.Name, n.ChainID, n.RPCURL)
		}
		return menuLines(items, m.cursor)
	case PageAddressBook:
		lines := make([]string, 0, len(m.entries)+len(m.result)+1)
		for _, e := range m.entries {
			lines = append(lines, fmt.Sprintf("%-16s %s", fitText(e.Label, 16), e.Address))
		}
		if len(m.entries) == 0 {
			lines = append(lines, "address book is empty")
		}
		if len(m.result) > 0 {
			lines = append(lines, uiDivider)
			lines = append(lines, m.result...)
		}
		return lines
	default:
		return m.result
	}
}

func (m Model) accountLines(address string) []string {
	lines := []string{"address: " + address}
	for _, acc := range m.accountList {
		if acc.Address != address {
			continue
		}
		lines = append(lines,
			"label:   "+valueOrDash(acc.Label),
			fmt.Sprintf("path:    m/44'/60'/0'/0/%d", acc.Index),
			"created: "+acc.CreatedAt.Format("2006-01-02 15:04"),
		)
		break
	}
	return lines
}

func entryLines(e models.AddressBookEntry) []string {
	lines := []string{
		"label:   " + e.Label,
		"address: " + e.Address,
	}
	if e.Note != "" {
		lines = append(lines, "note:    "+e.Note)
	}
	return lines
}

func txStatusLine(s models.TxStatus) string {
	line := fmt.Sprintf("tx %s: %s", shortAddress(s.Hash), s.State)
	if s.Block > 0 {
		line += fmt.Sprintf(" (block %d)", s.Block)
	}
	return line
}

func pageHelp(page Page) string {
	var hints []string
	switch page.Kind {
	case PageHome:
		hints = []string{"enter: open", "q: quit"}
	case PageAccounts:
		hints = []string{"enter: select", "r: reload", "esc: back"}
	case PageAccount:
		hints = []string{"c: copy address", "s: sign", "b: balance", "esc: back"}
	case PageNetworks:
		hints = []string{"enter: switch", "esc: back"}
	case PageImportAccount:
		hints = []string{"enter: import", "ctrl+g: new mnemonic", "esc: back"}
	case PageAddressBook:
		hints = []string{"enter: look up", "ctrl+s: save", "ctrl+d: delete", "esc: back"}
	default:
		hints = []string{"enter: submit", "esc: back"}
	}
	return strings.Join(append(hints, helpQuit), " • ")
}
