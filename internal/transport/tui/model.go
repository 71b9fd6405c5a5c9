package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/providers/genai"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/assistant"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/ui"
)

type replyMsg struct {
	msg core.Message
}

type turnErrMsg struct {
	err error
}

// transcriptChangedMsg is emitted by the session change hook whenever the
// transcript mutates, including clears issued through the command router.
type transcriptChangedMsg struct{}

type model struct {
	ctx    context.Context
	sess   *session.Session
	asst   *assistant.Assistant
	router core.CmdRouter

	input    textinput.Model
	vp       viewport.Model
	spin     spinner.Model
	renderer *glamour.TermRenderer

	waiting bool
	status  string
	notice  string
	errText string
	width   int
	height  int
	ready   bool
}

func newModel(ctx context.Context, sess *session.Session, asst *assistant.Assistant, router core.CmdRouter) model {
	input := textinput.New()
	input.Placeholder = "Type your HR or People Team question..."
	input.Prompt = "> "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return model{
		ctx:    ctx,
		sess:   sess,
		asst:   asst,
		router: router,
		input:  input,
		spin:   spin,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header, status bar and input line take four rows.
		vpHeight := msg.Height - 4
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-4),
		)
		if err == nil {
			m.renderer = renderer
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.waiting {
				// Single in-flight request: the question queue is the user.
				return m, nil
			}
			return m.submit()
		}

	case transcriptChangedMsg:
		m.refresh()
		return m, nil

	case replyMsg:
		m.waiting = false
		if err := m.sess.AppendAssistant(msg.msg); err != nil {
			m.errText = err.Error()
		}
		m.status = fmt.Sprintf("~%d prompt tokens next turn", m.sess.PromptTokens())
		m.refresh()
		return m, nil

	case turnErrMsg:
		m.waiting = false
		m.sess.Settle()
		m.errText = describeError(msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.Reset()
	m.errText = ""
	m.status = ""
	m.notice = ""

	if result, handled := m.router.Execute(m.ctx, line); handled {
		// The status bar is a single row. Multi-line output such as the
		// command list goes into the transcript pane instead.
		if strings.Contains(result, "\n") {
			m.notice = result
		} else {
			m.status = result
		}
		m.refresh()
		return m, nil
	}

	if err := m.sess.AppendUser(line); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.refresh()

	m.waiting = true
	snapshot := m.sess.Snapshot()
	ask := func() tea.Msg {
		reply, err := m.asst.Ask(m.ctx, snapshot)
		if err != nil {
			return turnErrMsg{err: err}
		}
		return replyMsg{msg: reply}
	}
	return m, tea.Batch(m.spin.Tick, ask)
}

// refresh rebuilds the viewport from the visible transcript and scrolls to
// the newest message.
func (m *model) refresh() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for _, msg := range m.sess.Visible() {
		label := ui.UserLabelStyle.Render(core.DisplayName(msg.Role))
		if msg.Role == core.RoleAssistant {
			label = ui.AssistantLabelStyle.Render(core.DisplayName(msg.Role))
		}
		b.WriteString(label)
		if msg.Timestamp != "" {
			b.WriteString(" " + ui.TimestampStyle.Render(msg.Timestamp))
		}
		b.WriteString("\n")
		b.WriteString(m.renderContent(msg))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(ui.NoticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	m.vp.SetContent(b.String())
	m.vp.GotoBottom()
}

func (m *model) renderContent(msg core.Message) string {
	if msg.Role == core.RoleAssistant && m.renderer != nil {
		if out, err := m.renderer.Render(msg.Content); err == nil {
			return strings.TrimRight(out, "\n") + "\n"
		}
	}
	return msg.Content + "\n"
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := ui.TitleStyle.Render(core.AppName) + " " +
		ui.DescStyle.Render("/help for commands, esc to quit")

	var inputLine string
	if m.waiting {
		inputLine = m.spin.View() + " Thinking..."
	} else {
		inputLine = m.input.View()
	}

	statusLine := ui.StatusStyle.Render(fmt.Sprintf("session %s | %s | %d messages",
		m.sess.ID()[:8], m.sess.State(), len(m.sess.Visible())))
	if m.errText != "" {
		statusLine = ui.ErrorStyle.Render(m.errText)
	} else if m.status != "" {
		statusLine = ui.NoticeStyle.Render(m.status)
	}

	return strings.Join([]string{header, m.vp.View(), inputLine, statusLine}, "\n")
}

// describeError maps the error taxonomy to the user-facing message.
func describeError(err error) string {
	var cfgErr *genai.ConfigError
	var transportErr *genai.TransportError
	var remoteErr *genai.RemoteError

	switch {
	case errors.As(err, &cfgErr):
		return "Configuration error: " + cfgErr.Error()
	case errors.As(err, &transportErr):
		return "Network error: " + transportErr.Error()
	case errors.As(err, &remoteErr):
		return fmt.Sprintf("Endpoint error: %s", remoteErr.Error())
	default:
		return "Error: " + err.Error()
	}
}
