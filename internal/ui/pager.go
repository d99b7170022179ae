package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerOps pages content through the embedded ov viewer, handing the
// terminal over and back around the pager run.
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowTextInPager pages a string.
func (p *PagerOps) ShowTextInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}
	return p.run(root)
}

// ShowFileInPager pages a file, typically the log file.
func (p *PagerOps) ShowFileInPager(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	root, err := oviewer.NewRoot(f)
	if err != nil {
		return err
	}
	return p.run(root)
}

// run releases the terminal, runs the viewer and restores the terminal.
func (p *PagerOps) run(root *oviewer.Root) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay so ov has fully exited before the alt screen returns
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
