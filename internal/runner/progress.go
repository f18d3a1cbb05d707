package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/lvtour/tsp"
)

// progress renders one job. With a time limit the bar tracks elapsed
// milliseconds against the budget; without one it spins once per cycle.
type progress struct {
	bar   *progressbar.ProgressBar
	w     io.Writer
	name  string
	total int
}

func newProgress(w io.Writer, name string, limit time.Duration) *progress {
	total := -1
	if limit > 0 {
		total = max(int(limit.Milliseconds()), 1)
	}

	return &progress{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionSetDescription("[cyan]"+name+"[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
		w:     w,
		name:  name,
		total: total,
	}
}

func (p *progress) update(r tsp.CycleReport) {
	p.bar.Describe(fmt.Sprintf("[cyan]%s[reset] cycle %d best %.2f", p.name, r.Cycle, r.BestCost))
	if p.total > 0 {
		_ = p.bar.Set(min(int(r.Elapsed.Milliseconds()), p.total))
		return
	}
	_ = p.bar.Add(1)
}

// finish is nil-safe so callers need not check whether progress is enabled.
func (p *progress) finish() {
	if p == nil {
		return
	}
	_ = p.bar.Finish()
	_, _ = fmt.Fprintln(p.w)
}
