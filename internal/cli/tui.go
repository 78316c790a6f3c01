package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/hillclimb/pkg/pipeline"
)

// inputPattern matches puzzle input files such as 12.txt.
var inputPattern = regexp.MustCompile(`^(\d{2})\.txt$`)

// challenges offered per day in the picker.
var challenges = []int{1, 2}

// =============================================================================
// Puzzle discovery
// =============================================================================

// Puzzle is one selectable (day, challenge) entry.
type Puzzle struct {
	Day       int
	Challenge int
	Path      string
	Size      int64
	Supported bool
}

// discoverPuzzles lists every <DD>.txt in dir crossed with each challenge,
// ordered by day then challenge.
func discoverPuzzles(dir string) ([]Puzzle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data path %s: %w", dir, err)
	}

	var puzzles []Puzzle
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := inputPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		var size int64
		if info, err := e.Info(); err == nil {
			size = info.Size()
		}
		for _, ch := range challenges {
			puzzles = append(puzzles, Puzzle{
				Day:       day,
				Challenge: ch,
				Path:      filepath.Join(dir, e.Name()),
				Size:      size,
				Supported: pipeline.ValidateSolver(day, ch) == nil,
			})
		}
	}

	sort.SliceStable(puzzles, func(i, j int) bool {
		if puzzles[i].Day != puzzles[j].Day {
			return puzzles[i].Day < puzzles[j].Day
		}
		return puzzles[i].Challenge < puzzles[j].Challenge
	})
	return puzzles, nil
}

// =============================================================================
// PuzzleListModel - Interactive puzzle selection
// =============================================================================

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// PuzzleListModel is the bubbletea model for interactive puzzle selection.
type PuzzleListModel struct {
	Puzzles  []Puzzle
	Cursor   int
	Selected *Puzzle
	Height   int
	Offset   int
}

// NewPuzzleListModel creates a new puzzle list model.
func NewPuzzleListModel(puzzles []Puzzle) PuzzleListModel {
	return PuzzleListModel{
		Puzzles: puzzles,
		Height:  15,
	}
}

func (m PuzzleListModel) Init() tea.Cmd {
	return nil
}

func (m PuzzleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Puzzles)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Puzzles) == 0 {
				return m, nil
			}
			p := m.Puzzles[m.Cursor]
			if !p.Supported {
				return m, nil
			}
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PuzzleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Puzzle"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ solve  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Puzzles))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Puzzles[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		status := "—"
		if p.Supported {
			status = "✓"
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%02d", p.Day),
			strconv.Itoa(p.Challenge),
			filepath.Base(p.Path),
			formatSize(p.Size),
			status,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Day", "Part", "Input", "Size", "Solver").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			idx := m.Offset + row
			if idx >= len(m.Puzzles) {
				return lipgloss.NewStyle()
			}
			p := m.Puzzles[idx]
			isCurrent := idx == m.Cursor

			base := lipgloss.NewStyle()
			switch {
			case !p.Supported:
				base = base.Foreground(colorDim)
			case col == 4:
				base = base.Foreground(colorGray)
			default:
				base = base.Foreground(colorGreen)
			}
			if isCurrent {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Puzzles) > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Puzzles))))
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func formatSize(n int64) string {
	switch {
	case n < 1<<10:
		return fmt.Sprintf("%d B", n)
	case n < 1<<20:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	}
}
