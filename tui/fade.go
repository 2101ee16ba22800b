package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	fadeFPS       = 60
	fadeFrequency = 7.0
	fadeDamping   = 1.0
	fadeEpsilon   = 0.005
)

type fadeFrameMsg time.Time

func fadeFrameCmd() tea.Cmd {
	return tea.Tick(time.Second/fadeFPS, func(t time.Time) tea.Msg {
		return fadeFrameMsg(t)
	})
}

// fade is a spring-driven opacity in [0, 1].
type fade struct {
	spring   harmonica.Spring
	opacity  float64
	velocity float64
	target   float64
}

func newFade() fade {
	return fade{spring: harmonica.NewSpring(harmonica.FPS(fadeFPS), fadeFrequency, fadeDamping)}
}

func (f *fade) retarget(target float64) {
	f.target = target
}

// step advances one frame and snaps to the target once close enough.
func (f *fade) step() {
	if f.settled() {
		return
	}
	f.opacity, f.velocity = f.spring.Update(f.opacity, f.velocity, f.target)
	if math.Abs(f.opacity-f.target) < fadeEpsilon && math.Abs(f.velocity) < fadeEpsilon {
		f.opacity = f.target
		f.velocity = 0
	}
}

func (f fade) settled() bool {
	return f.opacity == f.target && f.velocity == 0
}

func (f fade) visible() float64 {
	return math.Max(0, math.Min(1, f.opacity))
}
