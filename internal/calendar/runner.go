package calendar

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/vyevs/vtools"
	"go.uber.org/zap"

	"github.com/vyevs/aoc2022/internal/config"
	"github.com/vyevs/aoc2022/internal/input"
	"github.com/vyevs/aoc2022/internal/render"
)

var ErrMismatch = errors.New("answer does not match the example")

// Runner solves days and prints their answers to Out.
type Runner struct {
	Config *config.Config
	Logger *zap.Logger
	Out    io.Writer
	// Timing prints how long every day took.
	Timing bool
}

func (r *Runner) painter() render.Painter {
	return render.Painter{Color: r.Config.Color}
}

// Run solves d over its input file in the data directory.
func (r *Runner) Run(d Day) error {
	path := input.Path(r.Config.DataDir, d.Number)

	in, err := input.ReadDayFromFile(r.Config.DataDir, d.Number)
	if err != nil {
		return fmt.Errorf("day %d: %w", d.Number, err)
	}
	r.Logger.Debug("read input",
		zap.Int("day", d.Number),
		zap.String("path", path),
		zap.Int("bytes", len(in)),
	)

	answers, err := r.solve(d, in, r.Config.Days)
	if err != nil {
		return err
	}
	return r.print(d, answers)
}

// RunAll runs every day in order, skipping days without an input file.
func (r *Runner) RunAll() error {
	for _, d := range Days() {
		err := r.Run(d)
		if errors.Is(err, fs.ErrNotExist) {
			r.Logger.Warn("skipping day without input",
				zap.Int("day", d.Number),
				zap.String("path", input.Path(r.Config.DataDir, d.Number)),
			)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Check solves the worked example of d and compares the answers with the known ones.
func (r *Runner) Check(d Day) error {
	params := config.Default().Days
	if d.Sample.Params != nil {
		d.Sample.Params(&params)
	}

	answers, err := r.solve(d, input.Normalize(d.Sample.Input), params)
	if err != nil {
		return fmt.Errorf("example: %w", err)
	}
	if err := r.print(d, answers); err != nil {
		return err
	}

	for i, want := range [2]string{d.Sample.Want1, d.Sample.Want2} {
		if answers[i] != want {
			return fmt.Errorf("day %d part %d: %w: got %q, want %q", d.Number, i+1, ErrMismatch, answers[i], want)
		}
	}
	r.Logger.Debug("example passed", zap.Int("day", d.Number))
	return nil
}

func (r *Runner) CheckAll() error {
	for _, d := range Days() {
		if err := r.Check(d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) solve(d Day, in string, params config.Days) ([2]string, error) {
	if r.Timing {
		defer vtools.TimeIt(time.Now(), fmt.Sprintf("day %d", d.Number))
	}

	var answers [2]string
	for i, part := range d.Parts() {
		start := time.Now()
		answer, err := part(in, params)
		if err != nil {
			return answers, fmt.Errorf("day %d part %d: %w", d.Number, i+1, err)
		}
		r.Logger.Debug("solved",
			zap.Int("day", d.Number),
			zap.Int("part", i+1),
			zap.Duration("elapsed", time.Since(start)),
		)
		answers[i] = answer
	}
	return answers, nil
}

func (r *Runner) print(d Day, answers [2]string) error {
	p := r.painter()
	for i, answer := range answers {
		if _, err := io.WriteString(r.Out, p.Answer(d.Number, i+1, answer)); err != nil {
			return fmt.Errorf("failed to write answer: %v", err)
		}
	}
	return nil
}
