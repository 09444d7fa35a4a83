package view

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/DoyleJ11/cardroom-client/internal/dispatch"
	"github.com/DoyleJ11/cardroom-client/internal/engine"
)

// Control is one action button in whatever toolkit hosts the table.
type Control interface {
	Show()
	Hide()
}

// Group is the set of controls under one variant's container, keyed by
// their data-action value. A lookup miss means the host page has no such
// button.
type Group interface {
	Controls() []Control
	Lookup(a engine.Action) (Control, bool)
}

type Updater struct {
	variant engine.Variant
	group   Group
	log     *zap.Logger
}

func NewUpdater(v engine.Variant, g Group, log *zap.Logger) *Updater {
	if log == nil {
		log = zap.NewNop()
	}
	return &Updater{variant: v, group: g, log: log}
}

// Update hides every control in the group, then shows those the variant's
// policy enables for the session's viewer. A missing control counts as
// already hidden.
func (u *Updater) Update(sess dispatch.Session, s engine.State) []engine.Action {
	for _, c := range u.group.Controls() {
		c.Hide()
	}

	enabled := u.variant.Enabled(s, sess.ViewerID)
	for _, a := range enabled {
		c, ok := u.group.Lookup(a)
		if !ok {
			u.log.Debug("control not present", zap.String("group", u.variant.Group), zap.String("action", string(a)))
			continue
		}
		c.Show()
	}
	return enabled
}

// Button is an in-memory control for hosts that render from state rather
// than own widgets (the HTTP surface, the terminal).
type Button struct {
	Action engine.Action

	mu     sync.Mutex
	hidden bool
}

func (b *Button) Show() {
	b.mu.Lock()
	b.hidden = false
	b.mu.Unlock()
}

func (b *Button) Hide() {
	b.mu.Lock()
	b.hidden = true
	b.mu.Unlock()
}

func (b *Button) Hidden() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hidden
}

// ButtonGroup holds one Button per action of a variant, in display order.
type ButtonGroup struct {
	buttons []*Button
}

// NewButtonGroup builds the variant's buttons, all hidden. Actions listed
// in omit are left out, as when the host page lacks them.
func NewButtonGroup(v engine.Variant, omit ...engine.Action) *ButtonGroup {
	g := &ButtonGroup{}
	for _, a := range v.Actions {
		if slices.Contains(omit, a) {
			continue
		}
		g.buttons = append(g.buttons, &Button{Action: a, hidden: true})
	}
	return g
}

func (g *ButtonGroup) Controls() []Control {
	out := make([]Control, len(g.buttons))
	for i, b := range g.buttons {
		out[i] = b
	}
	return out
}

func (g *ButtonGroup) Lookup(a engine.Action) (Control, bool) {
	for _, b := range g.buttons {
		if b.Action == a {
			return b, true
		}
	}
	return nil, false
}

// Shown reports whether a's button exists and is visible.
func (g *ButtonGroup) Shown(a engine.Action) bool {
	for _, b := range g.buttons {
		if b.Action == a {
			return !b.Hidden()
		}
	}
	return false
}

// Visible lists the shown buttons in display order.
func (g *ButtonGroup) Visible() []engine.Action {
	var out []engine.Action
	for _, b := range g.buttons {
		if !b.Hidden() {
			out = append(out, b.Action)
		}
	}
	return out
}
