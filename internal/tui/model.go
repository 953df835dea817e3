// Package tui is the interactive session: one periodic-table view with a
// detail panel, find prompt, classification switching and sorted listings.
// All per-session mutable state lives on the model; a second program gets
// an independent model and never shares references.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hverma/elemental/internal/chem"
	"github.com/hverma/elemental/internal/classify"
	"github.com/hverma/elemental/internal/config"
	"github.com/hverma/elemental/internal/detail"
	"github.com/hverma/elemental/internal/grid"
	"github.com/hverma/elemental/internal/logging"
	"github.com/hverma/elemental/internal/lookup"
	"github.com/hverma/elemental/internal/store"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Store   *store.Store
	Display config.Config
	Log     *logging.Logger
}

type sessionMode int

const (
	modeBrowse sessionMode = iota
	modePrompt
	modeListing
)

type promptKind int

const (
	promptFind promptKind = iota
	promptScheme
	promptReference
	promptListing
)

type model struct {
	cfg    Config
	store  *store.Store
	engine *classify.Engine
	gen    *detail.Generator

	conv         chem.Convention
	opts         grid.Options
	grid         *grid.Grid
	gridDirty    bool
	classifierOK bool

	current int

	mode       sessionMode
	prompt     textinput.Model
	promptKind promptKind

	viewport    viewport.Model
	listing     viewport.Model
	listingProp string
	listingDesc bool

	helpVisible  bool
	infoMessage  string
	errorMessage string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	prompt := textinput.New()
	prompt.CharLimit = 60
	prompt.Width = 40

	engine := classify.New(cfg.Store)
	engine.SetEpsilon(cfg.Display.Epsilon)
	engine.SetTemperature(cfg.Display.Temperature)
	engine.SetYear(cfg.Display.Year)

	gen := detail.NewGenerator(cfg.Store)
	gen.SetExcluded(cfg.Display.ExcludedProps)

	m := &model{
		cfg:    cfg,
		store:  cfg.Store,
		engine: engine,
		gen:    gen,
		conv:   chem.ParseConvention(cfg.Display.Convention),
		opts: grid.Options{
			Width:      cfg.Display.ElementWidth,
			Separation: cfg.Display.ElementSeparation,
			Indent:     cfg.Display.Indentation,
		},
		gridDirty:    true,
		classifierOK: true,
		current:      1,
		prompt:       prompt,
		viewport:     viewport.New(80, 14),
		listing:      viewport.New(60, 14),
		listingProp:  "density",
		infoMessage:  "Press ? for the key list.",
	}

	scheme, err := classify.ParseScheme(cfg.Display.Scheme)
	if err != nil {
		m.classifierOK = false
		m.errorMessage = fmt.Sprintf("cannot resolve scheme %q; table rendered without coloring", cfg.Display.Scheme)
		cfg.Log.Error(err, "classification scheme unresolved")
	} else {
		engine.SetScheme(scheme)
	}

	m.refreshGridIfDirty()
	m.refreshDetail(true)
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) classifier() grid.Classifier {
	if !m.classifierOK {
		return nil
	}
	return m.engine
}

func (m *model) markGridDirty() { m.gridDirty = true }

func (m *model) refreshGridIfDirty() {
	if !m.gridDirty {
		return
	}
	m.gridDirty = false
	m.grid = grid.Build(m.store, m.conv, m.opts, m.classifier())
}

// refreshDetail regenerates the detail panel when the current element
// changed (or force is set) and loads it into the viewport.
func (m *model) refreshDetail(force bool) {
	if m.gen.Refresh(m.current, force) {
		m.viewport.SetContent(m.gen.Content())
		m.viewport.SetYOffset(0)
	}
}

func (m *model) move(count int) {
	m.refreshGridIfDirty()
	m.current = m.grid.MoveBy(m.current, count)
	m.refreshDetail(false)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width < 40 {
			width = 40
		}
		m.viewport.Width = width
		m.listing.Width = width
		height := msg.Height - len(m.gridLines()) - 6
		if height < 5 {
			height = 5
		}
		m.viewport.Height = height
		m.listing.Height = height
		m.gen.SetWidth(width)
		m.refreshDetail(true)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.mode != modeBrowse {
				m.closeOverlay()
				return m, nil
			}
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) closeOverlay() {
	m.mode = modeBrowse
	m.prompt.SetValue("")
	m.prompt.Blur()
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePrompt:
		return m.handlePromptKey(key)
	case modeListing:
		return m.handleListingKey(key)
	}
	return m.handleBrowseKey(key)
}

func (m *model) handleBrowseKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	handled := true
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "n", "right":
		m.move(1)
	case "p", "left":
		m.move(-1)
	case "g":
		m.jumpToAnchor(detail.AnchorProperties, "properties")
	case "G":
		m.jumpToAnchor(detail.AnchorIsotopes, "isotopes")
	case "/":
		m.openPrompt(promptFind, "Name, symbol or atomic number…")
	case "c":
		m.cycleScheme()
	case "t":
		m.openPrompt(promptScheme, "Scheme or numeric property name…")
	case "v":
		if m.conv == chem.Conventional {
			m.conv = chem.Ordered
		} else {
			m.conv = chem.Conventional
		}
		m.markGridDirty()
		m.infoMessage = fmt.Sprintf("Display convention: %s.", m.conv)
	case "+":
		m.adjustReference(1)
	case "-":
		m.adjustReference(-1)
	case "=":
		if _, ok := m.engine.Reference(); !ok {
			m.infoMessage = "The active scheme has no reference value."
		} else {
			m.openPrompt(promptReference, "New reference value…")
		}
	case "s":
		m.prompt.SetValue(m.listingProp)
		m.openPrompt(promptListing, "Property to sort by…")
	case "d":
		m.listingDesc = !m.listingDesc
		m.infoMessage = fmt.Sprintf("Listing direction: %s.", directionLabel(m.listingDesc))
	case "w":
		target := lookup.URL(m.cfg.Display.LookupURL, m.store.Symbol(m.current), m.store.Name(m.current))
		lookup.Open(target)
		m.infoMessage = fmt.Sprintf("Opened %s.", target)
		m.cfg.Log.WithFields(map[string]any{"url": target}).Debug("web lookup")
	case "?":
		m.helpVisible = !m.helpVisible
	default:
		handled = false
	}
	if handled {
		m.refreshGridIfDirty()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	return m, cmd
}

func (m *model) handlePromptKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(key)
	if key.Type != tea.KeyEnter {
		return m, cmd
	}
	value := strings.TrimSpace(m.prompt.Value())
	kind := m.promptKind
	m.closeOverlay()
	switch kind {
	case promptFind:
		m.applyFind(value)
	case promptScheme:
		m.applyScheme(value)
	case promptReference:
		m.applyReference(value)
	case promptListing:
		m.openListing(value)
	}
	m.refreshGridIfDirty()
	return m, cmd
}

func (m *model) handleListingKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		m.closeOverlay()
		return m, nil
	case "d":
		m.listingDesc = !m.listingDesc
		m.listing.SetContent(m.buildListing())
		m.listing.SetYOffset(0)
		return m, nil
	}
	var cmd tea.Cmd
	m.listing, cmd = m.listing.Update(key)
	return m, cmd
}

func (m *model) openPrompt(kind promptKind, placeholder string) {
	m.mode = modePrompt
	m.promptKind = kind
	m.prompt.Placeholder = placeholder
	if kind != promptListing {
		m.prompt.SetValue("")
	}
	m.prompt.Focus()
}

// applyFind resolves a find query. A failed find reports a message and
// leaves the selection untouched.
func (m *model) applyFind(query string) {
	if query == "" {
		return
	}
	z, ok := m.store.Find(query)
	if !ok {
		m.infoMessage = fmt.Sprintf("No element matches %q.", query)
		return
	}
	m.current = z
	m.refreshDetail(false)
	m.infoMessage = fmt.Sprintf("Selected %s (%s).", m.store.Name(z), m.store.Symbol(z))
}

func (m *model) applyScheme(value string) {
	if value == "" {
		return
	}
	scheme, err := classify.ParseScheme(value)
	if err != nil {
		m.infoMessage = fmt.Sprintf("Unknown scheme or property %q.", value)
		return
	}
	m.engine.SetScheme(scheme)
	m.classifierOK = true
	m.errorMessage = ""
	m.markGridDirty()
	m.infoMessage = fmt.Sprintf("Coloring by %s.", scheme.Label())
}

func (m *model) applyReference(value string) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		m.infoMessage = fmt.Sprintf("Not a number: %q.", value)
		return
	}
	m.engine.SetReference(v)
	m.markGridDirty()
	m.infoMessage = fmt.Sprintf("Reference set to %s.", value)
}

func (m *model) adjustReference(delta float64) {
	if _, ok := m.engine.Reference(); !ok {
		m.infoMessage = "The active scheme has no reference value."
		return
	}
	m.engine.AdjustReference(delta)
	m.markGridDirty()
	ref, _ := m.engine.Reference()
	m.infoMessage = fmt.Sprintf("Reference now %g.", ref)
}

var schemeCycle = []classify.Scheme{
	{Kind: classify.ByGroup},
	{Kind: classify.ByState},
	{Kind: classify.ByDiscovery},
	{Kind: classify.ByOxidation},
}

func (m *model) cycleScheme() {
	cur := m.engine.Scheme()
	next := schemeCycle[0]
	if m.classifierOK {
		for i, s := range schemeCycle {
			if s == cur {
				if i == len(schemeCycle)-1 {
					next = classify.Scheme{Kind: classify.ByProperty, Property: m.listingProp}
				} else {
					next = schemeCycle[i+1]
				}
				break
			}
		}
	}
	m.engine.SetScheme(next)
	m.classifierOK = true
	m.errorMessage = ""
	m.markGridDirty()
	m.infoMessage = fmt.Sprintf("Coloring by %s.", next.Label())
}

func (m *model) openListing(property string) {
	property = strings.ToLower(strings.TrimSpace(property))
	if property == "" {
		property = m.listingProp
	}
	info, ok := store.PropertyByName(property)
	if !ok || !info.Numeric {
		m.infoMessage = fmt.Sprintf("No numeric property named %q.", property)
		return
	}
	m.listingProp = property
	m.mode = modeListing
	m.listing.SetContent(m.buildListing())
	m.listing.SetYOffset(0)
}

func (m *model) buildListing() string {
	info, _ := store.PropertyByName(m.listingProp)
	var b strings.Builder
	title := fmt.Sprintf("Elements by %s (%s)", info.Label, directionLabel(m.listingDesc))
	b.WriteString(sectionHeaderStyle.Render(title))
	b.WriteRune('\n')
	for _, z := range m.store.SortedBy(m.listingProp, m.listingDesc) {
		value := m.store.Property(z, m.listingProp)
		if value != store.NA && info.Unit != "" {
			value += " " + info.Unit
		}
		b.WriteString(fmt.Sprintf("%4d  %-3s %-14s %s\n", z, m.store.Symbol(z), m.store.Name(z), value))
	}
	return b.String()
}

func (m *model) jumpToAnchor(anchor, label string) {
	line, ok := m.gen.Anchor(anchor)
	if !ok {
		m.infoMessage = fmt.Sprintf("No %s section.", label)
		return
	}
	m.viewport.SetYOffset(line)
	m.infoMessage = fmt.Sprintf("Jumped to %s.", label)
}

// SetConfig mutates one display option of this session only and triggers
// the scoped rebuild the option needs. Numeric invariants are clamped by
// the renderer, never rejected.
func (m *model) SetConfig(option, value string) error {
	switch option {
	case "width", "separation", "indent":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("option %s: %w", option, err)
		}
		switch option {
		case "width":
			m.opts.Width = n
		case "separation":
			m.opts.Separation = n
		case "indent":
			m.opts.Indent = n
		}
		m.markGridDirty()
	case "convention":
		m.conv = chem.ParseConvention(value)
		m.markGridDirty()
	case "scheme":
		scheme, err := classify.ParseScheme(value)
		if err != nil {
			m.classifierOK = false
			m.errorMessage = fmt.Sprintf("cannot resolve scheme %q; table rendered without coloring", value)
			m.markGridDirty()
			m.refreshGridIfDirty()
			return err
		}
		m.engine.SetScheme(scheme)
		m.classifierOK = true
		m.errorMessage = ""
		m.markGridDirty()
	case "epsilon":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("option epsilon: %w", err)
		}
		m.engine.SetEpsilon(v)
		m.markGridDirty()
	case "temperature":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("option temperature: %w", err)
		}
		m.engine.SetTemperature(v)
		m.markGridDirty()
	case "year":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("option year: %w", err)
		}
		m.engine.SetYear(n)
		m.markGridDirty()
	case "excluded":
		m.gen.SetExcluded(strings.Split(value, ","))
		m.refreshDetail(true)
	default:
		return fmt.Errorf("unknown option %q", option)
	}
	m.refreshGridIfDirty()
	return nil
}

func directionLabel(desc bool) string {
	if desc {
		return "descending"
	}
	return "ascending"
}
