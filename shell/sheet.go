package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/sheet"
)

func sheetCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "sheet",
		Help: "render all frames into a contact sheet PDF, usage: sheet [output.pdf]",
		Func: func(c *ishell.Context) {
			if len(ctx.Frames) == 0 {
				c.Err(errors.New("no file open"))
				return
			}

			outputName := ctx.outputName(".pdf")
			if len(c.Args) > 0 {
				outputName = c.Args[0]
			}

			frames := make([][]pose.Pose, len(ctx.Frames))
			for i, doc := range ctx.Frames {
				frames[i] = doc.Poses()
			}

			generator := sheet.CreateGenerator(outputName, sheet.GeneratorOptions{
				Title:          ctx.Config.Sheet.Title,
				AddPageNumbers: ctx.Config.Sheet.PageNumbers,
			})

			c.Printf("generating sheet with %d page(s)...\n", len(frames))

			if err := generator.Generate(frames, ctx.RenderCfg); err != nil {
				c.Err(fmt.Errorf("failed to generate sheet: %s", err.Error()))
				return
			}

			c.Printf("wrote %s\n", outputName)
		},
	}
}
