// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of go-chain-keeper.
//
// The screen is a stack of pages (see Navigation) rendered as a Body: the
// current page on the left and price, network and active account on the
// right. All collaborator calls run as bubbletea commands, and background
// workers report through a single channel drained by the model.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the UI until the user quits or ctx is cancelled. It returns the
// error that stopped the loop, nil after a normal quit.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(Model)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.Err()
}
