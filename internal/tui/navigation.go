// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type frame struct {
	page  Page
	input string
}

// Navigation is the page stack of the terminal UI. Every frame keeps its
// own input buffer: pushing a page starts with an empty buffer and popping
// exposes the buffer the covered page had. The stack is never empty.
//
// Navigation is owned by the bubbletea model and is not safe for
// concurrent use.
type Navigation struct {
	frames []frame
}

// NewNavigation returns a stack holding only root.
func NewNavigation(root Page) *Navigation {
	return &Navigation{frames: []frame{{page: root}}}
}

// Push covers the current page with page.
func (n *Navigation) Push(page Page) {
	n.frames = append(n.frames, frame{page: page})
}

// Pop removes the top page. At the root it does nothing and returns false.
func (n *Navigation) Pop() bool {
	if len(n.frames) <= 1 {
		return false
	}
	n.frames[len(n.frames)-1] = frame{}
	n.frames = n.frames[:len(n.frames)-1]
	return true
}

// Replace swaps the top page for page and clears its input.
func (n *Navigation) Replace(page Page) {
	n.frames[len(n.frames)-1] = frame{page: page}
}

// CurrentPage returns the top page.
func (n *Navigation) CurrentPage() Page {
	return n.top().page
}

// SetInput stores the input buffer of the top page.
func (n *Navigation) SetInput(s string) {
	n.top().input = s
}

// Input returns the input buffer of the top page.
func (n *Navigation) Input() string {
	return n.top().input
}

// Depth is the number of pages on the stack, root included.
func (n *Navigation) Depth() int {
	return len(n.frames)
}

// Stack returns the pages from root to top. The slice is a copy.
func (n *Navigation) Stack() []Page {
	pages := make([]Page, len(n.frames))
	for i, f := range n.frames {
		pages[i] = f.page
	}
	return pages
}

func (n *Navigation) top() *frame {
	return &n.frames[len(n.frames)-1]
}
