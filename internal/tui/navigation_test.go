package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigation_NewHasOnlyRoot(t *testing.T) {
	nav := NewNavigation(HomePage())

	assert.Equal(t, 1, nav.Depth())
	assert.Equal(t, HomePage(), nav.CurrentPage())
	assert.Equal(t, "", nav.Input())
}

func TestNavigation_PushStartsWithEmptyInput(t *testing.T) {
	nav := NewNavigation(HomePage())
	nav.SetInput("draft")

	nav.Push(BalancePage(""))

	assert.Equal(t, 2, nav.Depth())
	assert.Equal(t, PageBalance, nav.CurrentPage().Kind)
	assert.Equal(t, "", nav.Input())
}

func TestNavigation_PopRestoresCoveredInput(t *testing.T) {
	nav := NewNavigation(HomePage())
	nav.Push(AddressBookPage())
	nav.SetInput("alice")
	nav.Push(SignMessagePage("0xabc"))
	nav.SetInput("hello")

	require.True(t, nav.Pop())
	assert.Equal(t, AddressBookPage(), nav.CurrentPage())
	assert.Equal(t, "alice", nav.Input())

	require.True(t, nav.Pop())
	assert.Equal(t, HomePage(), nav.CurrentPage())
	assert.Equal(t, "", nav.Input())
}

func TestNavigation_PopDiscardsTopInput(t *testing.T) {
	nav := NewNavigation(HomePage())
	nav.Push(AccountsPage())
	nav.SetInput("0xABC")

	require.True(t, nav.Pop())

	assert.Equal(t, HomePage(), nav.CurrentPage())
	assert.Equal(t, "", nav.Input())

	nav.Push(AccountsPage())
	assert.Equal(t, "", nav.Input(), "a new frame never inherits an old buffer")
}

func TestNavigation_PopAtRootIsNoOp(t *testing.T) {
	nav := NewNavigation(HomePage())
	nav.SetInput("keep")

	assert.False(t, nav.Pop())
	assert.False(t, nav.Pop())

	assert.Equal(t, 1, nav.Depth())
	assert.Equal(t, HomePage(), nav.CurrentPage())
	assert.Equal(t, "keep", nav.Input())
}

func TestNavigation_ReplaceKeepsDepthAndClearsInput(t *testing.T) {
	nav := NewNavigation(HomePage())
	nav.Push(ImportAccountPage())
	nav.SetInput("label|words")

	nav.Replace(AccountsPage())

	assert.Equal(t, 2, nav.Depth())
	assert.Equal(t, AccountsPage(), nav.CurrentPage())
	assert.Equal(t, "", nav.Input())

	require.True(t, nav.Pop())
	assert.Equal(t, HomePage(), nav.CurrentPage())
}

func TestNavigation_StackIsACopy(t *testing.T) {
	nav := NewNavigation(HomePage())
	nav.Push(AccountsPage())
	nav.Push(AccountPage("0xabc"))

	stack := nav.Stack()
	require.Equal(t, []Page{HomePage(), AccountsPage(), AccountPage("0xabc")}, stack)

	stack[0] = TrackTxPage()
	assert.Equal(t, HomePage(), nav.Stack()[0])
}

func TestNavigation_DepthFollowsPushAndPop(t *testing.T) {
	nav := NewNavigation(HomePage())
	pages := []Page{AccountsPage(), AccountPage("0x1"), BalancePage("0x1"), TrackTxPage()}

	for i, p := range pages {
		nav.Push(p)
		assert.Equal(t, i+2, nav.Depth())
		assert.Equal(t, p, nav.CurrentPage())
	}
	for i := len(pages) - 1; i >= 0; i-- {
		assert.Equal(t, pages[i], nav.CurrentPage())
		require.True(t, nav.Pop())
	}
	assert.Equal(t, 1, nav.Depth())
}

func TestPage_HasInput(t *testing.T) {
	tests := []struct {
		page Page
		want bool
	}{
		{HomePage(), false},
		{AccountsPage(), false},
		{AccountPage("0x1"), false},
		{NetworksPage(), false},
		{ImportAccountPage(), true},
		{AddressBookPage(), true},
		{SignMessagePage("0x1"), true},
		{BalancePage(""), true},
		{TrackTxPage(), true},
	}
	for _, tt := range tests {
		t.Run(tt.page.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.HasInput())
		})
	}
}

func TestPage_Title(t *testing.T) {
	assert.Equal(t, "Accounts", AccountsPage().Title())
	assert.Equal(t, "Account 0xf39F…2266", AccountPage("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266").Title())
	assert.Equal(t, "Unknown", PageKind(99).String())
}
