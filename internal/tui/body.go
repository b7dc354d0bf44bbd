// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	leftPaneShare    = 70
	pricePlaceholder = "loading..."
	noPrice          = "n/a"

	minBodyWidth  = 20
	minBodyHeight = 5

	// border plus horizontal padding of paneStyle
	paneChromeWidth = 4
)

// Body is everything one frame of the screen shows. It is rebuilt for every
// View call; Render reads it and never changes it.
type Body struct {
	Navigation *Navigation
	// Price is nil until the first price update arrives.
	Price   *string
	Network string
	Account string
	Status  string
	Error   string
	// Content holds the already fetched lines of the current page.
	Content []string
	// InputLine replaces the plain "> input" line when set.
	InputLine string
	Help      string
}

// Render lays the body out as two bordered panes: the page on the left
// taking 70% of width, and price, network and account on the right.
func (b Body) Render(width, height int) string {
	if width < minBodyWidth || height < minBodyHeight {
		return ""
	}

	leftWidth := width * leftPaneShare / 100
	rightWidth := width - leftWidth
	innerHeight := height - 2

	left := renderPane(b.leftLines(leftWidth-paneChromeWidth, innerHeight), leftWidth, innerHeight)
	right := renderPane(b.rightLines(), rightWidth, innerHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (b Body) leftLines(width, height int) []string {
	page, input := HomePage(), ""
	if b.Navigation != nil {
		page, input = b.Navigation.CurrentPage(), b.Navigation.Input()
	}

	head := []string{titleStyle.Render(fitText(page.Title(), width)), fitText(uiDivider, width)}

	var tail []string
	if page.HasInput() {
		line := b.InputLine
		if line == "" {
			line = "> " + input
		}
		tail = append(tail, "", line)
	}
	if b.Error != "" {
		for _, l := range strings.Split(b.Error, "\n") {
			tail = append(tail, errorStyle.Render(fitText(l, width)))
		}
	}
	if b.Help != "" {
		tail = append(tail, helpStyle.Render(fitText(b.Help, width)))
	}

	room := max(height-len(head)-len(tail), 0)
	lines := append(head, fitLines(b.Content, width, room)...)
	return append(lines, tail...)
}

func (b Body) rightLines() []string {
	price := pricePlaceholder
	if b.Price != nil {
		price = *b.Price
		if price == "" {
			price = noPrice
		}
	}

	lines := []string{
		titleStyle.Render("Price"), price, "",
		titleStyle.Render("Network"), valueOrDash(b.Network), "",
		titleStyle.Render("Account"), valueOrDash(shortAddress(b.Account)),
	}
	if b.Status != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(b.Status, "\n")...)
	}
	return lines
}

func renderPane(lines []string, width, height int) string {
	lines = fitLines(lines, width-paneChromeWidth, height)
	return paneStyle.
		Width(width - 2).
		Height(height).
		Render(strings.Join(lines, "\n"))
}
