package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robolab/roboscene/internal/motion"
	"github.com/robolab/roboscene/internal/scene"
	"github.com/robolab/roboscene/internal/spatial"
	"github.com/robolab/roboscene/internal/store"
	"github.com/robolab/roboscene/internal/vistree"
)

const (
	canvasWidth  = 70
	canvasHeight = 22
	liveSlot     = "live"
)

type TickMsg time.Time

// Model is the live viewer: it steps the demo motions, renders the scene
// into its in-memory tree mirror, and draws the mirror as a wireframe.
type Model struct {
	scn     *scene.Scene
	tree    *vistree.MemTree
	motions motion.Group
	st      *store.Store
	preset  string

	fps    int
	t      float64
	frames int
	paused bool

	recording *scene.Capture
	lastRecID string

	// orbit camera state; the pose is rebuilt from these every change
	target    spatial.Vec3
	azimuth   float64
	elevation float64
	distance  float64

	canvas    *Canvas
	projector *Projector
	showHelp  bool
	err       error
}

// NewModel wires a viewer around an already-populated scene. The camera
// orbit parameters are derived from the scene's current camera pose.
func NewModel(scn *scene.Scene, tree *vistree.MemTree, motions motion.Group, st *store.Store, preset string, fps int) Model {
	eye := scn.CameraPos()
	m := Model{
		scn:       scn,
		tree:      tree,
		motions:   motions,
		st:        st,
		preset:    preset,
		fps:       fps,
		distance:  eye.Length(),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		projector: NewProjector(canvasWidth*2, canvasHeight*4),
	}
	if m.distance == 0 {
		m.distance = 5
	}
	m.azimuth = math.Atan2(eye.X, eye.Z)
	m.elevation = math.Asin(clamp(eye.Y/m.distance, -1, 1))
	m.applyCamera()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.paused {
			m.t += 1 / float64(m.fps)
			m.frames++
			m.motions.Step(m.t)
			if err := m.scn.Render(); err != nil {
				m.err = err
			}
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopRecording()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.toggleRecording()
		case "left":
			m.azimuth -= 0.15
			m.applyCamera()
		case "right":
			m.azimuth += 0.15
			m.applyCamera()
		case "up":
			m.elevation = clamp(m.elevation+0.1, -1.4, 1.4)
			m.applyCamera()
		case "down":
			m.elevation = clamp(m.elevation-0.1, -1.4, 1.4)
			m.applyCamera()
		case "+", "=":
			m.scn.SetCameraZoom(math.Min(10, m.scn.CameraZoom()*1.2))
		case "-":
			m.scn.SetCameraZoom(math.Max(0.1, m.scn.CameraZoom()/1.2))
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Model) applyCamera() {
	eye := spatial.Vec3{
		X: m.target.X + m.distance*math.Cos(m.elevation)*math.Sin(m.azimuth),
		Y: m.target.Y + m.distance*math.Sin(m.elevation),
		Z: m.target.Z + m.distance*math.Cos(m.elevation)*math.Cos(m.azimuth),
	}
	m.scn.SetCameraPose(spatial.LookAt(eye, m.target, spatial.Vec3{Y: 1}))
}

func (m *Model) toggleRecording() {
	if m.recording != nil {
		m.stopRecording()
		return
	}
	rec, err := m.scn.NamedAnimation(liveSlot, m.fps)
	if err != nil {
		m.err = err
		return
	}
	m.recording = rec
}

func (m *Model) stopRecording() {
	if m.recording == nil {
		return
	}
	rec := m.recording
	m.recording = nil
	if err := rec.Close(); err != nil {
		m.err = err
		return
	}
	if m.st == nil {
		return
	}
	clip, ok := m.tree.Animation("animations/" + liveSlot)
	if !ok {
		return
	}
	names := make([]string, 0)
	for _, o := range m.scn.Objects() {
		names = append(names, o.Name())
	}
	id, err := m.st.Save(liveSlot, m.preset, names, clip)
	if err != nil {
		m.err = err
		return
	}
	m.lastRecID = id
}

func (m Model) View() string {
	m.canvas.Clear()
	DrawTree(m.canvas, m.projector, m.tree, m.scn.CameraPose(), m.scn.CameraZoom())

	stats := m.statsPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.String()), stats)

	help := "space pause • r record • arrows orbit • +/- zoom • ? help • q quit"
	if m.showHelp {
		help = strings.Join([]string{
			"space  pause / resume",
			"r      start / stop recording (saved to the data dir)",
			"arrows orbit the camera around the scene",
			"+ / -  zoom in / out",
			"q      quit",
		}, "\n")
	}
	return body + "\n" + helpStyle.Render(help)
}

func (m Model) statsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("roboscene") + "\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("preset", m.preset)
	row("objects", fmt.Sprintf("%d", len(m.scn.Objects())))
	row("time", fmt.Sprintf("%.2fs", m.t))
	row("frame", fmt.Sprintf("%d", m.frames))
	row("zoom", fmt.Sprintf("%.2f", m.scn.CameraZoom()))

	switch {
	case m.recording != nil:
		b.WriteString(recStyle.Render(fmt.Sprintf("● REC %d frames", m.recording.Frames())) + "\n")
	case m.paused:
		b.WriteString(pausedStyle.Render("paused") + "\n")
	}
	if m.lastRecID != "" {
		row("saved", m.lastRecID)
	}
	if m.err != nil {
		b.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n")
	}
	return statsStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RunLive starts the interactive viewer and blocks until it exits.
func RunLive(scn *scene.Scene, tree *vistree.MemTree, motions motion.Group, st *store.Store, preset string, fps int) error {
	p := tea.NewProgram(NewModel(scn, tree, motions, st, preset, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
