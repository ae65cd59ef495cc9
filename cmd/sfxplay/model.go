// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx"
)

const (
	moveStep    float32 = 5
	turnStep    float32 = 15
	maxEffects          = 9
	refreshRate         = 100 * time.Millisecond
)

type tickMsg time.Time

type model struct {
	sys     *audsfx.System
	names   []string
	buffers []*audsfx.Buffer

	positional bool
	emitter    mgl32.Vec3
	rotation   float32

	// pool snapshot
	cursor int
	busy   []bool

	status string
}

func newModel(sys *audsfx.System, names []string, buffers []*audsfx.Buffer) model {
	m := model{
		sys:     sys,
		names:   names,
		buffers: buffers,
		emitter: mgl32.Vec3{0, 0, -10},
	}
	m.refresh()

	return m
}

func tick() tea.Cmd {
	return tea.Tick(refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.refresh()
		return m, tick()
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.positional = !m.positional
	case "up":
		m.emitter[2] -= moveStep
	case "down":
		m.emitter[2] += moveStep
	case "left":
		m.emitter[0] -= moveStep
	case "right":
		m.emitter[0] += moveStep
	case "a":
		m.turn(-turnStep)
	case "d":
		m.turn(turnStep)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.play(int(key[0] - '1'))
		}
	}

	m.refresh()
	return m, nil
}

func (m *model) play(i int) {
	if i >= len(m.buffers) || i >= maxEffects {
		return
	}

	var (
		v   *audsfx.Voice
		err error
	)
	if m.positional {
		v, err = m.sys.PlaySoundEffectAt(m.buffers[i], m.emitter, mgl32.Vec3{})
	} else {
		v, err = m.sys.PlaySoundEffect(m.buffers[i])
	}
	if err != nil {
		m.status = "error: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("%s on voice %d", m.names[i], v.Index())
}

func (m *model) turn(deg float32) {
	m.rotation = float32(int(m.rotation+deg+360) % 360)
	if err := m.sys.SetListener(mgl32.Vec3{}, mgl32.Vec3{}, m.rotation); err != nil {
		m.status = "error: " + err.Error()
	}
}

func (m *model) refresh() {
	m.cursor = m.sys.Cursor()
	voices := m.sys.Voices()
	if len(m.busy) != len(voices) {
		m.busy = make([]bool, len(voices))
	}
	for i, v := range voices {
		m.busy[i] = v.IsPlaying()
	}
}

func (m model) View() string {
	var sb strings.Builder

	mode := "2D"
	if m.positional {
		mode = fmt.Sprintf("3D  emitter (%.0f, %.0f, %.0f)", m.emitter[0], m.emitter[1], m.emitter[2])
	}
	fmt.Fprintf(&sb, "sfxplay  mode: %s  listener yaw: %.0f°\n\n", mode, m.rotation)

	for i, name := range m.names {
		if i >= maxEffects {
			break
		}
		fmt.Fprintf(&sb, "  %d  %s\n", i+1, name)
	}

	sb.WriteString("\n  pool ")
	for i, busy := range m.busy {
		switch {
		case i == m.cursor:
			sb.WriteByte('>')
		case busy:
			sb.WriteByte('#')
		default:
			sb.WriteByte('.')
		}
	}
	sb.WriteString("\n\n  " + m.status + "\n\n")
	sb.WriteString("1-9:play  p:2D/3D  arrows:move emitter  a/d:turn  q:quit\n")

	return sb.String()
}
