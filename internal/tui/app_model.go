// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	workerChannel = "workers"

	defaultWidth  = 100
	defaultHeight = 24
)

// TxTracker starts watching a transaction. Progress arrives later on the
// worker channel as models.TxStatus values.
type TxTracker interface {
	Track(txHash string) error
}

// Options are the collaborators of the terminal UI.
type Options struct {
	Services *service.ClientServices
	Tracker  TxTracker
	// Updates is drained for worker results. Closing it stops the UI with
	// a ChannelRecv error.
	Updates <-chan any
	Logger  *logger.Logger
	// CopyText defaults to the system clipboard.
	CopyText func(string) error
}

type menuItem struct {
	label string
	kind  PageKind
}

var homeMenu = []menuItem{
	{label: "Accounts", kind: PageAccounts},
	{label: "Import account", kind: PageImportAccount},
	{label: "Networks", kind: PageNetworks},
	{label: "Address book", kind: PageAddressBook},
	{label: "Sign message", kind: PageSignMessage},
	{label: "Balance", kind: PageBalance},
	{label: "Track transaction", kind: PageTrackTx},
}

// Model is the bubbletea model driving the whole UI. Key events change the
// Navigation, collaborator calls run as commands and come back as result
// messages, and every failure goes through handleErr.
type Model struct {
	ctx       context.Context
	accounts  service.AccountService
	chain     service.ChainService
	book      service.AddressBookService
	tracker   TxTracker
	updates   <-chan any
	presenter *apperr.Presenter
	logger    *logger.Logger
	copyText  func(string) error

	nav     *Navigation
	input   textinput.Model
	spinner spinner.Model
	// pending counts collaborator calls in flight. gen changes every time
	// the top of the stack changes; results started under an older gen are
	// stale.
	pending int
	gen     uint64

	width  int
	height int
	cursor int

	networks    []models.Network
	accountList []models.Account
	entries     []models.AddressBookEntry
	result      []string

	price   *string
	network string
	account string
	status  string
	errText string

	err error
}

func NewModel(ctx context.Context, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 1024

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	m := Model{
		ctx:       ctx,
		accounts:  opts.Services.Accounts,
		chain:     opts.Services.Chain,
		book:      opts.Services.AddressBook,
		tracker:   opts.Tracker,
		updates:   opts.Updates,
		presenter: apperr.NewPresenter(opts.Logger),
		logger:    opts.Logger,
		copyText:  copyText,
		nav:       NewNavigation(HomePage()),
		input:     ti,
		spinner:   sp,
		width:     defaultWidth,
		height:    defaultHeight,
		networks:  opts.Services.Chain.Networks(),
		network:   opts.Services.Chain.ActiveNetwork().Name,
	}
	if acc, err := m.accounts.ActiveAccount(); err == nil {
		m.account = acc.Address
	}
	return m
}

// Err is the error that stopped the loop, nil after a normal quit.
func (m Model) Err() error {
	return m.err
}

// Navigation exposes the page stack for inspection.
func (m Model) Navigation() *Navigation {
	return m.nav
}

func (m Model) Init() tea.Cmd {
	return m.waitForWorker()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width*leftPaneShare/100-paneChromeWidth-len(m.input.Prompt)-1, 1)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workerMsg:
		m = m.applyWorkerUpdate(msg.payload)
		return m, m.waitForWorker()
	case workerClosedMsg:
		m.err = apperr.ChannelRecv(workerChannel)
		m.presenter.Present(workerChannel, m.err)
		return m, tea.Quit
	case pageResultMsg:
		m.pending = max(m.pending-1, 0)
		if msg.gen != m.gen {
			return m.handleStaleResult(msg.msg), nil
		}
		return m.handleResult(msg.msg)
	}
	return m.handleResult(msg)
}

func (m Model) View() string {
	return m.body().Render(m.width, m.height)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	page := m.nav.CurrentPage()

	switch {
	case key.Matches(msg, keys.forceQ):
		return m, tea.Quit
	case key.Matches(msg, keys.back):
		if page.HasInput() {
			return m.handleErr("input", apperr.Abort("esc pressed"))
		}
		return m.pop()
	}

	if page.HasInput() {
		return m.handleInputKey(page, msg)
	}
	return m.handleListKey(page, msg)
}

func (m Model) handleListKey(page Page, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case key.Matches(msg, keys.down):
		m.cursor = min(m.cursor+1, max(m.listLen(page)-1, 0))
		return m, nil
	}

	switch page.Kind {
	case PageHome:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			return m.push(m.menuPage(homeMenu[m.cursor].kind))
		}
	case PageAccounts:
		switch {
		case key.Matches(msg, keys.enter) && len(m.accountList) > 0:
			return m.run(m.cmdActivate(m.accountList[m.cursor].Address))
		case key.Matches(msg, keys.reload):
			return m.run(m.cmdLoadAccounts())
		}
	case PageAccount:
		switch {
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(page.Address)
		case key.Matches(msg, keys.sign):
			return m.push(SignMessagePage(page.Address))
		case key.Matches(msg, keys.balance):
			return m.push(BalancePage(page.Address))
		}
	case PageNetworks:
		if key.Matches(msg, keys.enter) && len(m.networks) > 0 {
			return m.run(m.cmdSelectNetwork(m.networks[m.cursor].Name))
		}
	}
	return m, nil
}

func (m Model) handleInputKey(page Page, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		return m.submit(page)
	case page.Kind == PageAddressBook && key.Matches(msg, keys.save):
		label, address, note, err := parseEntryInput(m.nav.Input())
		if err != nil {
			return m.handleErr("save entry", err)
		}
		return m.run(m.cmdSaveEntry(label, address, note))
	case page.Kind == PageAddressBook && key.Matches(msg, keys.delete):
		return m.run(m.cmdDeleteEntry(strings.TrimSpace(m.nav.Input())))
	case page.Kind == PageImportAccount && key.Matches(msg, keys.generate):
		return m.run(m.cmdNewMnemonic())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.nav.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) submit(page Page) (Model, tea.Cmd) {
	value := m.nav.Input()

	switch page.Kind {
	case PageImportAccount:
		label, mnemonic := parseImportInput(value)
		return m.run(m.cmdImport(label, mnemonic))
	case PageAddressBook:
		return m.run(m.cmdLookup(strings.TrimSpace(value)))
	case PageSignMessage:
		return m.run(m.cmdSign(value))
	case PageBalance:
		address := strings.TrimSpace(value)
		if address == "" {
			address = page.Address
		}
		return m.run(m.cmdBalance(address))
	case PageTrackTx:
		return m.run(m.cmdTrack(strings.TrimSpace(value)))
	}
	return m, nil
}

func (m Model) handleResult(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		if msg.err != nil {
			return m.handleErr("accounts", msg.err)
		}
		m.accountList = msg.accounts
		m.cursor = min(m.cursor, max(len(msg.accounts)-1, 0))
	case accountActivatedMsg:
		if msg.err != nil {
			return m.handleErr("select account", msg.err)
		}
		m.account = msg.account.Address
		if m.nav.CurrentPage().Kind == PageAccounts {
			return m.push(AccountPage(msg.account.Address))
		}
	case accountImportedMsg:
		if msg.err != nil {
			return m.handleErr("import", msg.err)
		}
		m.status = fmt.Sprintf("imported %s (%s)", msg.account.Label, shortAddress(msg.account.Address))
		if m.nav.CurrentPage().Kind == PageImportAccount {
			m.nav.Replace(AccountsPage())
			return m.enterPage()
		}
	case mnemonicGeneratedMsg:
		if msg.err != nil {
			return m.handleErr("new mnemonic", msg.err)
		}
		label, _, _ := strings.Cut(m.nav.Input(), "|")
		m.setInput(strings.TrimSpace(label) + "|" + msg.mnemonic)
		m.result = []string{"write these words down before importing:", msg.mnemonic}
	case networkSelectedMsg:
		if msg.err != nil {
			return m.handleErr("select network", msg.err)
		}
		m = m.applyNetwork(msg.network)
	case entriesLoadedMsg:
		if msg.err != nil {
			return m.handleErr("address book", msg.err)
		}
		m.entries = msg.entries
	case entryFoundMsg:
		if msg.err != nil {
			return m.handleErr("look up", msg.err)
		}
		m.result = entryLines(msg.entry)
	case entrySavedMsg:
		if msg.err != nil {
			return m.handleErr("save entry", msg.err)
		}
		m.status = "saved " + msg.entry.Label
		m.setInput("")
		return m.run(m.cmdLoadEntries())
	case entryDeletedMsg:
		if msg.err != nil {
			return m.handleErr("delete entry", msg.err)
		}
		m.status = "deleted " + msg.label
		m.result = nil
		m.setInput("")
		return m.run(m.cmdLoadEntries())
	case messageSignedMsg:
		if msg.err != nil {
			return m.handleErr("sign", msg.err)
		}
		m.result = []string{"signature:", msg.signature}
	case balanceLoadedMsg:
		if msg.err != nil {
			return m.handleErr("balance", msg.err)
		}
		m.result = []string{
			"address: " + msg.balance.Address,
			"network: " + msg.balance.Network,
			"balance: " + msg.balance.Formatted + " " + msg.balance.Symbol,
		}
	case trackStartedMsg:
		if msg.err != nil {
			return m.handleErr("track", msg.err)
		}
		m.status = "tracking " + shortAddress(msg.hash)
		m.setInput("")
	case copiedMsg:
		if msg.err != nil {
			return m.handleErr("copy", apperr.FromIO(msg.err))
		}
		m.status = "copied " + shortAddress(msg.text)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleErr is where every failure ends up. An abort leaves the current
// page; anything else is shown under the page, which stays open.
func (m Model) handleErr(op string, err error) (Model, tea.Cmd) {
	appErr := apperr.From(err)
	if apperr.IsAbort(appErr) {
		m.logger.Debug().Str("op", op).Str("reason", appErr.Detail()).Msg("flow aborted")
		return m.pop()
	}
	m.errText = m.presenter.Present(op, appErr)
	return m, nil
}

// handleStaleResult applies a result whose page is no longer shown. Only
// the sidebar state survives; page content is dropped and errors are only
// logged.
func (m Model) handleStaleResult(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case accountActivatedMsg:
		if msg.err == nil {
			m.account = msg.account.Address
		}
	case accountImportedMsg:
		if msg.err == nil {
			m.status = fmt.Sprintf("imported %s (%s)", msg.account.Label, shortAddress(msg.account.Address))
		}
	case networkSelectedMsg:
		if msg.err == nil {
			m = m.applyNetwork(msg.network)
		}
	case trackStartedMsg:
		if msg.err == nil {
			m.status = "tracking " + shortAddress(msg.hash)
		}
	}

	if err := resultErr(msg); err != nil {
		m.presenter.Present("stale result", err)
	}
	m.logger.Debug().Type("result", msg).Msg("result for a page that is no longer shown")
	return m
}

func (m Model) applyNetwork(network models.Network) Model {
	if network.Name != m.network {
		m.price = nil
	}
	m.network = network.Name
	m.status = "switched to " + network.Name
	return m
}

func (m Model) applyWorkerUpdate(payload any) Model {
	switch u := payload.(type) {
	case models.PriceUpdate:
		if u.Err != nil {
			m.errText = m.presenter.Present("price", u.Err)
			return m
		}
		price := u.USD
		if price != "" {
			price = u.Symbol + " " + price
		}
		m.price = &price
	case models.TxStatus:
		if u.Err != nil {
			m.errText = m.presenter.Present("track "+shortAddress(u.Hash), u.Err)
		}
		m.status = txStatusLine(u)
	default:
		m.logger.Warn().Type("payload", payload).Msg("unexpected worker message")
	}
	return m
}

func (m Model) waitForWorker() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		payload, ok := <-updates
		if !ok {
			return workerClosedMsg{}
		}
		return workerMsg{payload: payload}
	}
}

func (m Model) push(page Page) (Model, tea.Cmd) {
	m.nav.Push(page)
	return m.enterPage()
}

func (m Model) pop() (Model, tea.Cmd) {
	if !m.nav.Pop() {
		return m, nil
	}
	return m.enterPage()
}

// enterPage resets per-page state after the top of the stack changed and
// starts loading the page data.
func (m Model) enterPage() (Model, tea.Cmd) {
	page := m.nav.CurrentPage()

	m.gen++
	m.cursor = 0
	m.result = nil
	m.errText = ""
	m.input.Reset()
	m.input.SetValue(m.nav.Input())
	m.input.Placeholder = page.placeholder()

	var focus tea.Cmd
	if page.HasInput() {
		focus = m.input.Focus()
	} else {
		m.input.Blur()
	}

	var load tea.Cmd
	switch page.Kind {
	case PageAccounts:
		load = m.cmdLoadAccounts()
	case PageAddressBook:
		load = m.cmdLoadEntries()
	}
	if load == nil {
		return m, focus
	}

	m, cmd := m.run(load)
	return m, tea.Batch(focus, cmd)
}

// run starts a collaborator call tagged with the current page generation.
// The spinner starts with the first call in flight.
func (m Model) run(cmd tea.Cmd) (Model, tea.Cmd) {
	gen := m.gen
	scoped := func() tea.Msg {
		return pageResultMsg{gen: gen, msg: cmd()}
	}

	m.pending++
	m.errText = ""
	if m.pending > 1 {
		return m, scoped
	}
	return m, tea.Batch(scoped, m.spinner.Tick)
}

func (m *Model) setInput(s string) {
	m.nav.SetInput(s)
	m.input.SetValue(s)
}

func (m Model) menuPage(kind PageKind) Page {
	switch kind {
	case PageSignMessage:
		return SignMessagePage(m.account)
	case PageBalance:
		return BalancePage(m.account)
	default:
		return Page{Kind: kind}
	}
}

func (m Model) listLen(page Page) int {
	switch page.Kind {
	case PageHome:
		return len(homeMenu)
	case PageAccounts:
		return len(m.accountList)
	case PageNetworks:
		return len(m.networks)
	default:
		return 0
	}
}

func (m Model) cmdLoadAccounts() tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		accounts, err := svc.Accounts(ctx)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func (m Model) cmdActivate(address string) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		account, err := svc.SetActiveAccount(ctx, address)
		return accountActivatedMsg{account: account, err: err}
	}
}

func (m Model) cmdImport(label, mnemonic string) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		account, err := svc.ImportMnemonic(ctx, label, mnemonic)
		return accountImportedMsg{account: account, err: err}
	}
}

func (m Model) cmdNewMnemonic() tea.Cmd {
	svc := m.accounts
	return func() tea.Msg {
		mnemonic, err := svc.NewMnemonic()
		return mnemonicGeneratedMsg{mnemonic: mnemonic, err: err}
	}
}

func (m Model) cmdSelectNetwork(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.chain
	return func() tea.Msg {
		network, err := svc.SelectNetwork(ctx, name)
		return networkSelectedMsg{network: network, err: err}
	}
}

func (m Model) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	svc := m.book
	return func() tea.Msg {
		entries, err := svc.List(ctx)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) cmdLookup(label string) tea.Cmd {
	ctx := m.ctx
	svc := m.book
	return func() tea.Msg {
		entry, err := svc.Lookup(ctx, label)
		return entryFoundMsg{entry: entry, err: err}
	}
}

func (m Model) cmdSaveEntry(label, address, note string) tea.Cmd {
	ctx := m.ctx
	svc := m.book
	return func() tea.Msg {
		entry, err := svc.Save(ctx, label, address, note)
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m Model) cmdDeleteEntry(label string) tea.Cmd {
	ctx := m.ctx
	svc := m.book
	return func() tea.Msg {
		return entryDeletedMsg{label: label, err: svc.Delete(ctx, label)}
	}
}

func (m Model) cmdSign(message string) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		signature, err := svc.SignMessage(ctx, message)
		return messageSignedMsg{signature: signature, err: err}
	}
}

func (m Model) cmdBalance(address string) tea.Cmd {
	ctx := m.ctx
	svc := m.chain
	return func() tea.Msg {
		balance, err := svc.Balance(ctx, address)
		return balanceLoadedMsg{balance: balance, err: err}
	}
}

func (m Model) cmdTrack(hash string) tea.Cmd {
	tracker := m.tracker
	return func() tea.Msg {
		if tracker == nil {
			return trackStartedMsg{hash: hash, err: apperr.Internal("transaction tracking is not running")}
		}
		return trackStartedMsg{hash: hash, err: tracker.Track(hash)}
	}
}

func (m Model) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{text: text, err: copyText(text)}
	}
}

// parseImportInput splits "label|mnemonic". Without a "|" the whole input
// is the mnemonic.
func parseImportInput(s string) (label, mnemonic string) {
	label, mnemonic, found := strings.Cut(s, "|")
	if !found {
		return "", strings.TrimSpace(s)
	}
	return strings.TrimSpace(label), strings.TrimSpace(mnemonic)
}

// parseEntryInput splits "label address [note...]".
func parseEntryInput(s string) (label, address, note string, err error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", "", "", apperr.Internal(`expected "label 0xaddress [note]"`)
	}
	return fields[0], fields[1], strings.Join(fields[2:], " "), nil
}
