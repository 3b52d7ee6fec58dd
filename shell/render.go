package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/export"
)

func renderCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "render",
		Help:      "render a frame to PNG, usage: render <frame> [output.png]",
		Completer: createFrameCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing frame index"))
				return
			}

			doc, idx, err := ctx.frame(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			outputName := ctx.outputName(fmt.Sprintf("_frame_%d.png", idx))
			if len(c.Args) > 1 {
				outputName = c.Args[1]
			}

			img, err := ctx.Renderer.Render(doc.Poses(), ctx.RenderCfg)
			if err != nil {
				c.Err(fmt.Errorf("failed to render frame %d: %s", idx, err.Error()))
				return
			}

			data, err := export.PNG(img)
			if err != nil {
				c.Err(err)
				return
			}

			if err := os.WriteFile(outputName, data, 0644); err != nil {
				c.Err(fmt.Errorf("failed to write %s: %s", outputName, err.Error()))
				return
			}

			c.Printf("wrote %s\n", outputName)
		},
	}
}
