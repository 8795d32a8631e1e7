package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var lang = language.English

// WinTile is the tile that counts as a won game.
const WinTile = 2048

// CI is a confidence interval.
type CI struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Report summarises a simulation run.
type Report struct {
	Policy  string `json:"policy"`
	Games   int    `json:"games"`
	Workers int    `json:"workers"`
	Seed    int64  `json:"seed"`

	MeanScore float64 `json:"mean_score"`
	StdScore  float64 `json:"std_score"`
	BestScore int     `json:"best_score"`
	MeanMoves float64 `json:"mean_moves"`

	// MaxTiles counts games by their largest tile.
	MaxTiles map[int]int `json:"max_tiles"`

	Reached   int     `json:"reached_2048"`
	WinRate   float64 `json:"win_rate"`
	WinRateCI CI      `json:"win_rate_ci95"`

	Elapsed time.Duration `json:"elapsed_ns"`
	Results []GameResult  `json:"results,omitempty"`
}

func newReport(policy string, opts Options, results []GameResult, elapsed time.Duration) *Report {
	r := &Report{
		Policy:   policy,
		Games:    len(results),
		Workers:  opts.Workers,
		Seed:     opts.Seed,
		MaxTiles: make(map[int]int),
		Elapsed:  elapsed,
	}

	scores := make([]float64, len(results))
	moves := make([]float64, len(results))
	for i, res := range results {
		scores[i] = float64(res.Score)
		moves[i] = float64(res.Moves)
		r.MaxTiles[res.MaxTile]++
		if res.Score > r.BestScore {
			r.BestScore = res.Score
		}
		if res.MaxTile >= WinTile {
			r.Reached++
		}
	}

	r.MeanScore, r.StdScore = stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		r.StdScore = 0
	}
	r.MeanMoves = stat.Mean(moves, nil)
	r.WinRate, r.WinRateCI = proportionCI(r.Reached, r.Games, 0.95)

	if opts.KeepResults {
		r.Results = results
	}
	return r
}

// proportionCI is the Clopper-Pearson interval for k successes out of n.
func proportionCI(k, n int, confidence float64) (float64, CI) {
	if n == 0 {
		return 0, CI{0, 1}
	}
	alpha := 1 - confidence
	p := float64(k) / float64(n)

	var ci CI
	if k > 0 {
		ci.Lo = distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}.Quantile(alpha / 2)
	}
	if k == n {
		ci.Hi = 1
	} else {
		ci.Hi = distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}.Quantile(1 - alpha/2)
	}
	return p, ci
}

// Tiles returns the max-tile values seen, ascending.
func (r *Report) Tiles() []int {
	tiles := make([]int, 0, len(r.MaxTiles))
	for t := range r.MaxTiles {
		tiles = append(tiles, t)
	}
	sort.Ints(tiles)
	return tiles
}

// Fprint writes the report as two text tables.
func (r *Report) Fprint(w io.Writer) error {
	p := message.NewPrinter(lang)

	keys := []string{"Policy", "Games", "Workers", "Seed", "Mean Score", "Std Score", "Best Score", "Mean Moves", "Reached 2048", "Win Rate", "Win Rate 95% CI", "Elapsed"}
	summary := map[string]string{
		"Policy":          r.Policy,
		"Games":           p.Sprintf("%d", r.Games),
		"Workers":         p.Sprintf("%d", r.Workers),
		"Seed":            fmt.Sprintf("%d", r.Seed),
		"Mean Score":      p.Sprintf("%.1f", r.MeanScore),
		"Std Score":       p.Sprintf("%.1f", r.StdScore),
		"Best Score":      p.Sprintf("%d", r.BestScore),
		"Mean Moves":      p.Sprintf("%.1f", r.MeanMoves),
		"Reached 2048":    p.Sprintf("%d", r.Reached),
		"Win Rate":        p.Sprintf("%.2f %%", 100*r.WinRate),
		"Win Rate 95% CI": p.Sprintf("[%.2f%%, %.2f%%]", 100*r.WinRateCI.Lo, 100*r.WinRateCI.Hi),
		"Elapsed":         r.Elapsed.Round(time.Millisecond).String(),
	}

	tiles := r.Tiles()
	tileKeys := make([]string, 0, len(tiles))
	dist := make(map[string]string, len(tiles))
	for i := len(tiles) - 1; i >= 0; i-- {
		k := p.Sprintf("%d", tiles[i])
		n := r.MaxTiles[tiles[i]]
		tileKeys = append(tileKeys, k)
		dist[k] = p.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(r.Games))
	}

	if _, err := io.WriteString(w, fmtTable("2048 Simulation", keys, summary)); err != nil {
		return err
	}
	_, err := io.WriteString(w, fmtTable("Max Tile", tileKeys, dist))
	return err
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen, maxValLen := 0, 0
	for _, k := range keys {
		maxKeyLen = max(maxKeyLen, runewidth.StringWidth(k))
		maxValLen = max(maxValLen, runewidth.StringWidth(msg[k]))
	}
	maxKeyLen += 2
	maxValLen += 2

	totalInner := maxKeyLen + maxValLen + 1
	if w := runewidth.StringWidth(title); w > totalInner {
		maxValLen += w - totalInner
		totalInner = w
	}

	top := "+" + strings.Repeat("-", totalInner) + "+\n"
	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"

	titleW := runewidth.StringWidth(title)
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var sb strings.Builder
	sb.WriteString(top)
	fmt.Fprintf(&sb, "|%s%s%s|\n", blank(left), title, blank(right))
	sb.WriteString(divider)
	for _, k := range keys {
		fmt.Fprintf(&sb, "| %s | %s |\n",
			runewidth.FillRight(k, maxKeyLen-2),
			runewidth.FillRight(msg[k], maxValLen-2))
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}

// Export writes the report as JSON. Paths ending in .zst are zstd
// compressed.
func (r *Report) Export(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("sim: encode report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sim: create report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sim: create report: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.HasSuffix(path, ".zst") {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("sim: create zstd writer: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			_ = zw.Close()
			return fmt.Errorf("sim: write report: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("sim: close zstd writer: %w", err)
		}
	} else if _, err := f.Write(data); err != nil {
		return fmt.Errorf("sim: write report: %w", err)
	}
	return f.Close()
}

// LoadReport reads a report written by Export.
func LoadReport(path string) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: read report: %w", err)
	}
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("sim: create zstd reader: %w", err)
		}
		defer zr.Close()
		raw, err = zr.DecodeAll(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("sim: decompress report: %w", err)
		}
	}
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("sim: decode report: %w", err)
	}
	return &r, nil
}
