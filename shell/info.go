package shell

import (
	"errors"

	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/pose"
)

func infoCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "info",
		Help:      "show keypoint detail for a frame, usage: info <frame>",
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

			poses := doc.Poses()
			c.Printf("frame %d: %d person(s)\n", idx, len(poses))

			for pi, p := range poses {
				c.Printf("person %d:\n", pi)
				for ki, kp := range p {
					marker := " "
					if !kp.Visible() {
						marker = "x"
					}
					c.Printf("  %s %-15s %-10s x=%.4f y=%.4f c=%.3f\n",
						marker, pose.LandmarkName(ki), pose.RegionOf(ki), kp.X, kp.Y, kp.Confidence)
				}
			}
		},
	}
}
