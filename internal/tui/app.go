// Package tui renders the demo page in the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/comment-filter/internal"
)

type mode int

const (
	modeMain mode = iota
	modeModal
	modeCompose
)

const logHeight = 8

// scrollState is shared between the model copies bubbletea passes around and
// the activity log observer.
type scrollState struct {
	pending bool
}

// Model is the bubbletea model of the demo page
type Model struct {
	page     *internal.Page
	mode     mode
	cursor   int // login modal option, 0 is the "Select a user..." placeholder
	compose  textinput.Model
	logView  viewport.Model
	scroll   *scrollState
	width    int
	height   int
	quitting bool
}

// NewModel builds the terminal page around page
func NewModel(page *internal.Page) Model {
	ci := textinput.New()
	ci.Placeholder = "leave a comment..."
	ci.CharLimit = 280

	m := Model{
		page:    page,
		compose: ci,
		logView: viewport.New(80, logHeight),
		scroll:  &scrollState{pending: true},
		width:   100,
		height:  40,
	}
	scroll := m.scroll
	page.Log().OnAppend(func(internal.LogEntry) { scroll.pending = true })

	if page.Session().ModalVisible() {
		m.mode = modeModal
	}
	m.syncLog()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes keys to the open panel and keeps the log view current
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = max(20, m.width-4)
		m.scroll.pending = true

	case tea.KeyMsg:
		switch m.mode {
		case modeModal:
			m, cmd = m.updateModal(msg)
		case modeCompose:
			m, cmd = m.updateCompose(msg)
		default:
			m, cmd = m.updateMain(msg)
		}
	}

	if m.page.Session().ModalVisible() && m.mode != modeModal {
		m.mode = modeModal
		m.cursor = m.candidateIndex()
	}
	m.syncLog()
	return m, cmd
}

// syncLog refreshes the log panel and scrolls to the newest entry after appends
func (m *Model) syncLog() {
	if !m.scroll.pending {
		return
	}
	m.scroll.pending = false
	m.logView.SetContent(renderLog(m.page.Log().Entries()))
	m.logView.GotoBottom()
}

func (m Model) updateMain(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "f":
		_ = m.page.ApplyFilter()

	case "c":
		_ = m.page.ClearFilter()

	case "l":
		m.page.OpenLoginModal()

	case "o":
		m.page.Logout()

	case "s":
		m.page.ToggleSidebar()

	case "a":
		if !m.page.Session().LoggedIn() {
			m.page.Log().Append("Please login first", internal.SeverityWarn)
			return m, nil
		}
		m.compose.SetValue("")
		m.compose.Focus()
		m.mode = modeCompose

	default:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	users := internal.AllUsers()
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// the modal can only be dismissed once someone is logged in
		if m.page.Session().LoggedIn() {
			m.page.CloseLoginModal()
			m.mode = modeMain
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.selectCursor(users)

	case "down", "j":
		if m.cursor < len(users) {
			m.cursor++
		}
		m.selectCursor(users)

	case "enter":
		// login stays disabled until a user is picked
		if m.page.Session().Candidate() == "" {
			return m, nil
		}
		if err := m.page.Login(); err == nil {
			m.mode = modeMain
		}
	}
	return m, nil
}

func (m *Model) selectCursor(users []internal.Identity) {
	id := ""
	if m.cursor > 0 {
		id = users[m.cursor-1].UserID
	}
	if err := m.page.SelectCandidate(id); err != nil {
		internal.LogWarn("select candidate: %v", err)
	}
}

func (m Model) candidateIndex() int {
	candidate := m.page.Session().Candidate()
	for i, u := range internal.AllUsers() {
		if u.UserID == candidate {
			return i + 1
		}
	}
	return 0
}

func (m Model) updateCompose(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.compose.Blur()
		m.mode = modeMain
		return m, nil

	case "enter":
		if strings.TrimSpace(m.compose.Value()) != "" {
			_ = m.page.AddComment(m.compose.Value())
		}
		m.compose.Blur()
		m.mode = modeMain
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

// View renders the page, or the login modal while it is open
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeModal {
		return m.viewModal()
	}

	v := m.page.View()
	var b strings.Builder
	b.WriteString(m.renderHeader(v) + "\n")
	b.WriteString(m.renderUserGrid(v) + "\n")
	b.WriteString(m.renderComments(v) + "\n")
	b.WriteString(panelStyle.Width(max(20, m.width-2)).Render(panelTitleStyle.Render("Status Log")+"\n"+m.logView.View()) + "\n")

	if m.mode == modeCompose {
		b.WriteString(titleStyle.Render("Comment:") + " " + m.compose.View() + "\n")
		b.WriteString(helpStyle.Render("  Enter: post  Esc: cancel"))
	} else {
		b.WriteString(m.renderHelp(v))
	}
	return b.String()
}

func (m Model) renderHeader(v internal.PageView) string {
	title := titleStyle.Render(v.Title)

	user := dimStyle.Render("not logged in")
	if v.LoggedIn {
		user = "as " + userColor(v.User, v.User.Name) + dimStyle.Render(" ("+v.User.UserID+")")
	}

	applyBtn, clearBtn := disabledButtonStyle, disabledButtonStyle
	if v.LoggedIn {
		applyBtn, clearBtn = buttonStyle, dangerButtonStyle
	}
	state := dimStyle.Render("filter off")
	if v.FilterApplied {
		state = showBadge.Render("filter on")
	}
	buttons := strings.Join([]string{
		applyBtn.Render("[f] Apply Filter (5 users)"),
		clearBtn.Render("[c] Clear Filter"),
		buttonStyle.Render("[l] Login"),
	}, " ")

	left := title + " " + user + "  " + state
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(buttons) - 2
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + buttons)
}

func (m Model) renderUserGrid(v internal.PageView) string {
	var rows []string
	var row []string
	for i, card := range v.Users {
		style, badge := notInFilterCard, hideBadge.Render(card.Badge())
		if card.InFilter {
			style, badge = inFilterCard, showBadge.Render(card.Badge())
		}
		row = append(row, style.Render(fmt.Sprintf("%s\n%s\n%s", userColor(card.Identity, card.Name), dimStyle.Render(card.UserID), badge)))
		if (i+1)%5 == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	title := panelTitleStyle.Render(fmt.Sprintf("All %d Users (each adds a comment)", len(v.Users)))
	desc := dimStyle.Render("Green = included in filter (5 users) | Red = excluded from filter (5 users).")
	return panelStyle.Render(title + "\n" + desc + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderComments(v internal.PageView) string {
	areaWidth := max(30, m.width-4)
	if v.SidebarOpen {
		areaWidth = max(30, (m.width-6)*3/5)
	}

	var area strings.Builder
	area.WriteString(panelTitleStyle.Render("Comment Area") + dimStyle.Render(" "+v.Document.Name) + "\n")
	switch {
	case !v.LoggedIn:
		area.WriteString(dimStyle.Render("Login to see and leave comments."))
	case len(v.DomComments) == 0:
		area.WriteString(dimStyle.Render("No comments yet. Press a to add one."))
	default:
		area.WriteString(renderCommentLines(v.DomComments))
	}
	areaPanel := panelStyle.Width(areaWidth).Render(area.String())

	if !v.SidebarOpen {
		return areaPanel
	}

	var side strings.Builder
	side.WriteString(panelTitleStyle.Render("Comments Sidebar") + "\n")
	if len(v.SidebarComments) == 0 {
		side.WriteString(dimStyle.Render("Nothing matches the filter."))
	} else {
		side.WriteString(renderCommentLines(v.SidebarComments))
	}
	sidePanel := panelStyle.Width(max(20, m.width-areaWidth-6)).Render(side.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, areaPanel, sidePanel)
}

func renderCommentLines(comments []internal.Comment) string {
	lines := make([]string, 0, len(comments))
	for _, c := range comments {
		author := c.AuthorName
		if u, ok := internal.FindUser(c.AuthorID); ok {
			author = userColor(u, c.AuthorName)
		}
		lines = append(lines, fmt.Sprintf("%s %s", author, c.Body))
	}
	return strings.Join(lines, "\n")
}

func renderLog(entries []internal.LogEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		style, ok := severityStyles[e.Severity]
		if !ok {
			style = severityStyles[internal.SeverityInfo]
		}
		lines = append(lines, style.Render(fmt.Sprintf("[%s] %s", e.Time, e.Message)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp(v internal.PageView) string {
	if !v.LoggedIn {
		return helpStyle.Render("  l: login  q: quit")
	}
	return helpStyle.Render("  f: apply filter  c: clear filter  a: comment  s: sidebar  l: switch user  o: logout  ↑↓/pgup/pgdn: scroll log  q: quit")
}

func (m Model) viewModal() string {
	v := m.page.View()
	users := internal.AllUsers()

	var opts []string
	placeholder := "Select a user..."
	if m.cursor == 0 {
		opts = append(opts, selectedOptionStyle.Render("› "+placeholder))
	} else {
		opts = append(opts, dimStyle.Render("  "+placeholder))
	}
	for i, u := range users {
		label := fmt.Sprintf("%s (%s)", u.Name, u.UserID)
		if m.cursor == i+1 {
			opts = append(opts, selectedOptionStyle.Render("› "+label))
		} else {
			opts = append(opts, "  "+label)
		}
	}

	loginButton := disabledButtonStyle.Render("Login")
	if v.Candidate != "" {
		loginButton = buttonStyle.Render("Login")
	}

	hint := "↑↓: choose  Enter: login  ctrl+c: quit"
	if v.LoggedIn {
		hint = "↑↓: choose  Enter: login  Esc: cancel"
	}

	content := strings.Join([]string{
		titleStyle.Render("Login to Comments"),
		"",
		panelTitleStyle.Render("Login as User"),
		strings.Join(opts, "\n"),
		"",
		panelTitleStyle.Render("Organization") + "  " + v.Organization.Name,
		panelTitleStyle.Render("Document") + "      " + v.Document.Name,
		"",
		loginButton,
		"",
		dimStyle.Render(hint),
	}, "\n")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content))
}
