package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
)

func displayFrame(c *ishell.Context, index int, doc *openpose.Document) {
	total := 0
	visible := 0
	for _, p := range doc.Poses() {
		total += len(p)
		visible += p.Visible()
	}
	c.Printf("[%d]\t%d person(s)\t%d/%d keypoints visible\n", index, len(doc.People), visible, total)
}

func lsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "ls",
		Help: "list loaded frames, usage: ls [--json]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
			var asJSON bool
			flagSet.BoolVar(&asJSON, "json", false, "machine readable output")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			if len(ctx.Frames) == 0 {
				c.Err(errors.New("no file open"))
				return
			}

			if asJSON || ctx.JSONOutput {
				if err := displayFramesJSON(c, ctx.Frames); err != nil {
					c.Err(err)
				}
				return
			}

			for i, doc := range ctx.Frames {
				displayFrame(c, i, doc)
			}
		},
	}
}
