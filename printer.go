package patchup

import (
	"fmt"
	"io"
	"sync"

	pb "github.com/schollz/progressbar/v3"
)

// BasicPrinter is the default style: it prints nothing per rule, so the
// only output of a normal run is the final confirmation line.
type BasicPrinter struct {
	w    io.Writer
	lock sync.Mutex
}

func (p *BasicPrinter) SetSteps(int)                      {}
func (p *BasicPrinter) Print(name, summ string, step int) {}
func (p *BasicPrinter) Done(string)                       {}

type StepPrinter struct {
	w     io.Writer
	lock  sync.Mutex
	steps int
}

func (p *StepPrinter) SetSteps(steps int) {
	p.steps = steps
}
func (p *StepPrinter) Done(string) {}

func (p *StepPrinter) Print(name, summ string, step int) {
	p.lock.Lock()
	defer p.lock.Unlock()
	fmt.Fprintf(p.w, "[%d/%d] ", step, p.steps)
	fmt.Fprintln(p.w, summ)
}

type ProgressPrinter struct {
	w    io.Writer
	lock sync.Mutex
	bar  *pb.ProgressBar
}

func (p *ProgressPrinter) SetSteps(steps int) {
	p.bar = pb.NewOptions64(int64(steps),
		pb.OptionSetWriter(p.w),
		pb.OptionSetWidth(10),
		pb.OptionShowCount(),
		pb.OptionSpinnerType(14),
		pb.OptionFullWidth(),
		pb.OptionSetPredictTime(false),
		pb.OptionSetDescription("Patching"),
		pb.OptionOnCompletion(func() {
			fmt.Fprint(p.w, "\n")
		}),
		pb.OptionSetTheme(pb.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func (p *ProgressPrinter) Print(name, summ string, step int) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.bar.Describe("Patching " + name)
	p.bar.RenderBlank()
}

func (p *ProgressPrinter) Done(name string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.bar.Describe("Patched " + name)
	p.bar.Add(1)
}
