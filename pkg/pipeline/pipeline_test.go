package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/observability"
	"github.com/matzehuels/hillclimb/pkg/search"
)

const reference = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

const enclosed = `Saaaa
azzza
azEza
azzza
aaaaa
`

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
}

// writeData stores content as <dir>/12.txt and returns dir.
func writeData(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "12.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return dir
}

func TestValidateGraphMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"csr", false},
		{"implicit", false},
		{"CSR", true}, // case-sensitive
		{"lazy", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateGraphMode(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateGraphMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
	}
}

func TestValidateSolver(t *testing.T) {
	tests := []struct {
		day, challenge int
		wantErr        bool
	}{
		{12, 1, false},
		{12, 2, false},
		{12, 3, true},
		{11, 1, true},
		{0, 1, true},
	}

	for _, tt := range tests {
		err := ValidateSolver(tt.day, tt.challenge)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSolver(%d, %d) error = %v, wantErr %v", tt.day, tt.challenge, err, tt.wantErr)
		}
		if err != nil && !apperr.Is(err, apperr.ErrCodeUnsupported) {
			t.Errorf("ValidateSolver(%d, %d) code = %s, want UNSUPPORTED", tt.day, tt.challenge, apperr.GetCode(err))
		}
	}

	err := ValidateSolver(3, 2)
	if want := "no solver available for day 3, challenge 2"; apperr.UserMessage(err) != want {
		t.Errorf("message = %q, want %q", apperr.UserMessage(err), want)
	}
}

func TestOptions_InputPath(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"defaults", Options{}, filepath.Join("data", "12.txt")},
		{"data path", Options{DataPath: "inputs"}, filepath.Join("inputs", "12.txt")},
		{"zero padded", Options{Day: 5}, filepath.Join("data", "05.txt")},
		{"explicit input wins", Options{Input: "grid.txt", DataPath: "inputs"}, "grid.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.InputPath(); got != tt.want {
				t.Errorf("InputPath() = %q, want %q", got, tt.want)
			}
		})
	}

	inline := Options{Grid: "SE", Input: "grid.txt"}
	if got := inline.Source(); got != InlineSource {
		t.Errorf("Source() = %q, want %q", got, InlineSource)
	}
}

func TestOptions_ValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Day != DefaultDay || opts.Challenge != DefaultChallenge {
		t.Errorf("day/challenge = %d/%d, want %d/%d", opts.Day, opts.Challenge, DefaultDay, DefaultChallenge)
	}
	if opts.DataPath != DefaultDataPath {
		t.Errorf("DataPath = %q, want %q", opts.DataPath, DefaultDataPath)
	}
	if opts.Graph != DefaultGraph {
		t.Errorf("Graph = %q, want %q", opts.Graph, DefaultGraph)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error = %v", err)
	}

	tests := []struct {
		name string
		opts Options
		code apperr.Code
	}{
		{"unknown challenge", Options{Challenge: 3}, apperr.ErrCodeUnsupported},
		{"unknown day", Options{Day: 1}, apperr.ErrCodeUnsupported},
		{"bad graph mode", Options{Graph: "lazy"}, apperr.ErrCodeInvalidInput},
		{"negative workers", Options{Workers: -1}, apperr.ErrCodeInvalidInput},
		{"negative timeout", Options{Timeout: -time.Second}, apperr.ErrCodeInvalidInput},
		{"control character in path", Options{Input: "grid\x01.txt"}, apperr.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !apperr.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExecute_Reference(t *testing.T) {
	dir := writeData(t, reference)
	runner := quietRunner()

	tests := []struct {
		challenge int
		graph     string
		want      int
	}{
		{1, GraphCSR, 31},
		{1, GraphImplicit, 31},
		{2, GraphCSR, 29},
		{2, GraphImplicit, 29},
	}

	for _, tt := range tests {
		result, err := runner.Execute(context.Background(), Options{
			Challenge: tt.challenge,
			DataPath:  dir,
			Graph:     tt.graph,
			Workers:   2,
			Verify:    true,
		})
		if err != nil {
			t.Fatalf("challenge %d/%s: Execute() error = %v", tt.challenge, tt.graph, err)
		}
		if result.Search.Cost != tt.want {
			t.Errorf("challenge %d/%s: cost = %d, want %d", tt.challenge, tt.graph, result.Search.Cost, tt.want)
		}
		if !result.Verified {
			t.Errorf("challenge %d/%s: result not verified", tt.challenge, tt.graph)
		}
		if len(result.Search.Path) != tt.want+1 {
			t.Errorf("challenge %d/%s: path length = %d, want %d", tt.challenge, tt.graph, len(result.Search.Path), tt.want+1)
		}
		if result.Stats.Rows != 5 || result.Stats.Cols != 8 {
			t.Errorf("challenge %d/%s: stats size = %dx%d, want 5x8", tt.challenge, tt.graph, result.Stats.Rows, result.Stats.Cols)
		}
	}
}

func TestExecute_InlineGridAndSkipPath(t *testing.T) {
	runner := quietRunner()
	result, err := runner.Execute(context.Background(), Options{
		Challenge: 2,
		Grid:      reference,
		SkipPath:  true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Search.Cost != 29 {
		t.Errorf("cost = %d, want 29", result.Search.Cost)
	}
	if result.Search.Path != nil {
		t.Errorf("path = %v, want nil", result.Search.Path)
	}
	if result.Stats.Sources != len(result.Grid.Lowest()) {
		t.Errorf("sources = %d, want %d", result.Stats.Sources, len(result.Grid.Lowest()))
	}
}

func TestExecute_Errors(t *testing.T) {
	runner := quietRunner()

	tests := []struct {
		name string
		opts Options
		code apperr.Code
	}{
		{"missing file", Options{DataPath: t.TempDir()}, apperr.ErrCodeMalformedGrid},
		{"malformed grid", Options{Grid: "Sab\nabcE\n"}, apperr.ErrCodeMalformedGrid},
		{"missing endpoint", Options{Grid: "Sab\n"}, apperr.ErrCodeMissingEndpoint},
		{"unreachable from start", Options{Grid: enclosed, Challenge: 1}, apperr.ErrCodeNotFound},
		{"unreachable from all", Options{Grid: enclosed, Challenge: 2}, apperr.ErrCodeNoPathFromAnySource},
		{"unsupported challenge", Options{Grid: reference, Challenge: 7}, apperr.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runner.Execute(context.Background(), tt.opts)
			if err == nil {
				t.Fatalf("Execute() = %+v, want error", result)
			}
			if !apperr.Is(err, tt.code) {
				t.Errorf("Execute() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExecute_NotFoundMessageNamesEndpoints(t *testing.T) {
	_, err := quietRunner().Execute(context.Background(), Options{Grid: enclosed})
	if !strings.Contains(err.Error(), "no path found from (0,0) to (2,2)") {
		t.Errorf("error = %q, want it to name both endpoints", err)
	}
}

func TestRunner_VerifyMismatch(t *testing.T) {
	opts := Options{Grid: reference}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	runner := quietRunner()
	grid, err := runner.Load(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	g := runner.Build(context.Background(), grid, opts)

	err = runner.Verify(grid, g, opts, search.Result{Found: true, Cost: 30})
	if !apperr.Is(err, apperr.ErrCodeInternal) {
		t.Errorf("Verify() error = %v, want INTERNAL_ERROR", err)
	}
	if err := runner.Verify(grid, g, opts, search.Result{Found: true, Cost: 31}); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
	cells  int
	cost   int
}

func (h *recordingHooks) OnLoadStart(context.Context, string) {
	h.events = append(h.events, "load-start")
}

func (h *recordingHooks) OnLoadComplete(_ context.Context, _ string, cells int, _ time.Duration, _ error) {
	h.events = append(h.events, "load")
	h.cells = cells
}

func (h *recordingHooks) OnBuildComplete(context.Context, string, int, time.Duration) {
	h.events = append(h.events, "build")
}

func (h *recordingHooks) OnSearchStart(context.Context, int, int) {
	h.events = append(h.events, "search-start")
}

func (h *recordingHooks) OnSearchComplete(_ context.Context, _ int, cost, _ int, _ time.Duration, _ error) {
	h.events = append(h.events, "search")
	h.cost = cost
}

func TestExecute_EmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if _, err := quietRunner().Execute(context.Background(), Options{Grid: reference}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "load-start,load,build,search-start,search"
	if got := strings.Join(hooks.events, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
	if hooks.cells != 40 {
		t.Errorf("cells = %d, want 40", hooks.cells)
	}
	if hooks.cost != 31 {
		t.Errorf("cost = %d, want 31", hooks.cost)
	}
}
