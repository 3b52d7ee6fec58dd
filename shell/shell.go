// Package shell implements the interactive pose workbench.
package shell

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/config"
	"github.com/justinfleek/lattice-pose/encoding/openpose"
	"github.com/justinfleek/lattice-pose/render"
	"github.com/justinfleek/lattice-pose/version"
)

// ShellCtxt holds the session state shared by all commands.
type ShellCtxt struct {
	Frames     []*openpose.Document
	SourcePath string
	Config     *config.Config
	RenderCfg  render.Config
	Renderer   *render.Renderer
	JSONOutput bool
}

func (ctx *ShellCtxt) prompt() string {
	if ctx.SourcePath == "" {
		return "[-]>"
	}
	return fmt.Sprintf("[%s]>", filepath.Base(ctx.SourcePath))
}

// frame resolves a frame index argument against the loaded set.
func (ctx *ShellCtxt) frame(arg string) (*openpose.Document, int, error) {
	if len(ctx.Frames) == 0 {
		return nil, 0, fmt.Errorf("no file open")
	}
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid frame index %q", arg)
	}
	if idx < 0 || idx >= len(ctx.Frames) {
		return nil, 0, fmt.Errorf("frame %d outside range, max: %d", idx, len(ctx.Frames)-1)
	}
	return ctx.Frames[idx], idx, nil
}

// outputName derives an output file next to the source, with a new extension.
func (ctx *ShellCtxt) outputName(suffix string) string {
	base := "poses"
	if ctx.SourcePath != "" {
		name := filepath.Base(ctx.SourcePath)
		base = name[:len(name)-len(filepath.Ext(name))]
	}
	return base + suffix
}

func createFsEntryCompleter() func(args []string) []string {
	return func(args []string) []string {
		partial := ""
		if len(args) > 0 {
			partial = args[len(args)-1]
		}

		dir := path.Dir(partial)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil
		}

		var names []string
		for _, e := range entries {
			name := path.Join(dir, e.Name())
			if e.IsDir() {
				name += "/"
			}
			names = append(names, name)
		}
		return names
	}
}

func createFrameCompleter(ctx *ShellCtxt) func(args []string) []string {
	return func(args []string) []string {
		indices := make([]string, 0, len(ctx.Frames))
		for i := range ctx.Frames {
			indices = append(indices, strconv.Itoa(i))
		}
		return indices
	}
}

func setCmds(shell *ishell.Shell, ctx *ShellCtxt) {
	shell.AddCmd(openCmd(ctx))
	shell.AddCmd(lsCmd(ctx))
	shell.AddCmd(infoCmd(ctx))
	shell.AddCmd(renderCmd(ctx))
	shell.AddCmd(exportCmd(ctx))
	shell.AddCmd(sheetCmd(ctx))
	shell.AddCmd(packCmd(ctx))
	shell.AddCmd(fetchCmd(ctx))
	shell.AddCmd(setCmd(ctx))
	shell.AddCmd(versionCmd(ctx))
}

// RunShell starts the workbench. With args it runs one command and
// returns, otherwise it drops into the interactive loop.
func RunShell(ctx *ShellCtxt, args []string) error {
	shell := ishell.New()
	shell.Println("lattice-pose", version.Version)
	shell.SetPrompt(ctx.prompt())

	setCmds(shell, ctx)

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Run()
	return nil
}
