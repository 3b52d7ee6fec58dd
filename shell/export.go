package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
)

func exportCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "export",
		Help:      "write a frame as normalized keypoint json, usage: export <frame> [output.json]",
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

			outputName := ctx.outputName(fmt.Sprintf("_frame_%d.json", idx))
			if len(c.Args) > 1 {
				outputName = c.Args[1]
			}

			data, err := openpose.MarshalIndent(openpose.Export(doc.Poses()))
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
