package shell

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/justinfleek/lattice-pose/archive"
	"github.com/justinfleek/lattice-pose/export"
	"github.com/justinfleek/lattice-pose/pose"
)

func packCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "pack",
		Help: "bundle loaded frames into a pose pack, usage: pack [--renders] [output" + archive.Ext + "]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("pack", flag.ContinueOnError)
			var withRenders bool
			flagSet.BoolVar(&withRenders, "renders", false, "include rendered PNGs in the bundle")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}
			args := flagSet.Args()

			if len(ctx.Frames) == 0 {
				c.Err(errors.New("no file open"))
				return
			}

			outputName := ctx.outputName(archive.Ext)
			if len(args) > 0 {
				outputName = args[0]
			}

			var renders [][]byte
			if withRenders {
				frames := make([][]pose.Pose, len(ctx.Frames))
				for i, doc := range ctx.Frames {
					frames[i] = doc.Poses()
				}

				images, err := export.Sequence(context.Background(), frames, ctx.RenderCfg, export.DefaultBatchSize)
				if err != nil {
					c.Err(fmt.Errorf("failed to render frames: %s", err.Error()))
					return
				}

				renders = make([][]byte, len(images))
				for i, img := range images {
					data, err := export.PNG(img)
					if err != nil {
						c.Err(err)
						return
					}
					renders[i] = data
				}
			}

			bundle := archive.NewBundle(ctx.RenderCfg.Width, ctx.RenderCfg.Height)
			for i, doc := range ctx.Frames {
				if withRenders {
					bundle.AddFrame(doc, renders[i])
				} else {
					bundle.AddFrame(doc, nil)
				}
			}

			file, err := os.Create(outputName)
			if err != nil {
				c.Err(fmt.Errorf("failed to create %s: %s", outputName, err.Error()))
				return
			}
			defer file.Close()

			if err := bundle.Write(file); err != nil {
				c.Err(fmt.Errorf("failed to write bundle: %s", err.Error()))
				return
			}

			c.Printf("wrote %s (%d frame(s))\n", outputName, len(ctx.Frames))
		},
	}
}
