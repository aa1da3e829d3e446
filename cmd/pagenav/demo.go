package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagenav"
	"github.com/Alp4ka/pagenav/autoclose"
	"github.com/Alp4ka/pagenav/autoclose/teaevents"
	"github.com/Alp4ka/pagenav/internal/render"
)

const menuName = "page-size"

var pageSizes = []int{5, 10, 25}

func newDemoCmd(a *app) *cobra.Command {
	var (
		collectionSize int
		mode           string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse a paginated list with a page size dropdown",
		Long: `demo shows a paginated list in the terminal.

Keys: left/right change page, m toggles the page size menu, q quits.
The menu closes on Escape and on clicks according to --auto-close.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			autoCloseMode, err := autoclose.ParseMode(mode)
			if err != nil {
				return err
			}

			m := newDemoModel(a.settings.Pagination, collectionSize, autoCloseMode, a.logger)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			m.send = p.Send

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&collectionSize, "collection-size", 95, "Number of items in the list")
	cmd.Flags().StringVar(&mode, "auto-close", autoclose.ModeAny.String(), "Menu auto close mode: off, any, inside, outside")

	return cmd
}

type demoModel struct {
	logger *slog.Logger
	pager  *pagenav.Paginator
	bar    *render.Bar
	items  int
	mode   autoclose.Mode
	send   func(tea.Msg)

	layout  *teaevents.Layout
	bridge  *teaevents.Bridge
	root    *teaevents.Region
	toggle  *teaevents.Region
	menu    *teaevents.Region
	options []*teaevents.Region

	open   bool
	// menuID names the current menu opening, so a close requested for an
	// earlier opening is ignored.
	menuID string
	opened int
	sub    *autoclose.Subscription
	closed chan struct{}
}

func newDemoModel(config pagenav.Config, items int, mode autoclose.Mode, logger *slog.Logger) *demoModel {
	m := &demoModel{
		logger: logger,
		bar:    render.NewBar(nil, config.Size),
		items:  items,
		mode:   mode,
		layout: &teaevents.Layout{},
	}

	m.pager = pagenav.NewPaginator(config).
		WithLogger(logger).
		WithOnPageChange(func(page int) {
			logger.Debug("demo page selected", slog.Int("page", page))
		})
	m.pager.SetCollectionSize(items)

	m.bridge = teaevents.NewBridge(m.layout.HitTest)

	m.root = &teaevents.Region{Name: "root", Width: 1 << 16, Height: 1 << 16}
	m.toggle = &teaevents.Region{Name: "toggle", Width: len(m.toggleLabel()), Height: 1, Parent: m.root}
	m.menu = &teaevents.Region{Name: "menu", Y: 1, Width: 12, Height: len(pageSizes), Parent: m.root}
	m.options = lo.Map(pageSizes, func(size, i int) *teaevents.Region {
		return &teaevents.Region{
			Name:    fmt.Sprint(size),
			Y:       1 + i,
			Width:   12,
			Height:  1,
			Parent:  m.menu,
			Classes: []string{"dropdown-item"},
		}
	})
	m.layout.Add(m.root, m.toggle)

	return m
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.bridge.Feed(msg)

	switch msg := msg.(type) {
	case teaevents.CloseOverlayMsg:
		if m.open && msg.Name == m.menuID {
			m.closeMenu()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.closeMenu()
			return m, tea.Quit
		case "left", "h":
			m.pager.SelectPage(m.pager.Page() - 1)
		case "right", "l":
			m.pager.SelectPage(m.pager.Page() + 1)
		case "m":
			m.toggleMenu()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			break
		}

		switch target := m.layout.HitTest(msg.X, msg.Y); target {
		case m.toggle:
			m.toggleMenu()
		default:
			if option, ok := target.(*teaevents.Region); ok && lo.Contains(m.options, option) {
				m.setPageSize(pageSizes[lo.IndexOf(m.options, option)])
			}
		}
	}

	return m, nil
}

func (m *demoModel) toggleMenu() {
	if m.open {
		m.closeMenu()
		return
	}

	m.opened++
	m.open = true
	m.menuID = fmt.Sprintf("%s#%d", menuName, m.opened)
	m.closed = make(chan struct{})
	m.layout.Add(m.menu)
	m.layout.Add(m.options...)

	m.sub = autoclose.Start(m.bridge, autoclose.Config{
		Mode:   m.mode,
		Inside: []autoclose.Element{m.menu},
		Ignore: []autoclose.Element{m.toggle},
	}, teaevents.SendClose(m.send, m.menuID), m.closed, autoclose.WithLogger(m.logger))
}

// closeMenu hides the menu. A coordinator that did not close it itself sees
// an external close.
func (m *demoModel) closeMenu() {
	if !m.open {
		return
	}

	m.open = false
	m.layout.Remove(m.menu)
	for _, option := range m.options {
		m.layout.Remove(option)
	}
	close(m.closed)
	m.sub = nil
}

func (m *demoModel) setPageSize(size int) {
	config := m.pager.Config()
	if config.PageSize == size {
		return
	}

	// Keep the first visible item on screen.
	first := pagenav.PageOffset(m.pager.Page(), config.PageSize)

	config.PageSize = size
	m.pager.SetConfig(config)
	m.pager.SelectPage(first/size + 1)
	m.toggle.Width = len(m.toggleLabel())
}

func (m *demoModel) toggleLabel() string {
	size := pagenav.DefaultPageSize
	if m.pager != nil {
		size = m.pager.Config().PageSize
	}

	return fmt.Sprintf("[page size: %d v]", size)
}

func (m *demoModel) View() string {
	var b strings.Builder

	b.WriteString(m.toggleLabel())
	b.WriteByte('\n')

	if m.open {
		for _, size := range pageSizes {
			marker := lo.Ternary(size == m.pager.Config().PageSize, ">", " ")
			fmt.Fprintf(&b, "%s %-10d\n", marker, size)
		}
	}

	pageSize := m.pager.Config().PageSize
	from := pagenav.PageOffset(m.pager.Page(), pageSize)
	for i := from; i < min(from+pageSize, m.items); i++ {
		fmt.Fprintf(&b, "  item %d\n", i+1)
	}

	b.WriteByte('\n')
	b.WriteString(m.bar.Render(m.pager.Links()))
	fmt.Fprintf(&b, "\npage %d of %d  (left/right, m: page size, q: quit)\n", m.pager.Page(), m.pager.PageCount())

	return b.String()
}
