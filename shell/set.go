package shell

import (
	"fmt"
	"image/color"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"
)

func setCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "set",
		Help: "show or change session render options, usage: set [options]",
		LongHelp: `Usage: set [options]

Without options the current render settings are printed.

Options:
  --width=<N>        canvas width in pixels
  --height=<N>       canvas height in pixels
  --bone-width=<F>   bone stroke width
  --radius=<F>       keypoint marker radius
  --colors=<mode>    openpose or uniform
  --bones=<bool>     draw bones
  --keypoints=<bool> draw keypoint markers`,
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("set", flag.ContinueOnError)
			width := flagSet.Int("width", ctx.RenderCfg.Width, "canvas width")
			height := flagSet.Int("height", ctx.RenderCfg.Height, "canvas height")
			boneWidth := flagSet.Float64("bone-width", ctx.RenderCfg.BoneWidth, "bone stroke width")
			radius := flagSet.Float64("radius", ctx.RenderCfg.KeypointRadius, "keypoint radius")
			colors := flagSet.String("colors", "", "openpose or uniform")
			bones := flagSet.Bool("bones", ctx.RenderCfg.ShowBones, "draw bones")
			keypoints := flagSet.Bool("keypoints", ctx.RenderCfg.ShowKeypoints, "draw keypoints")

			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			if len(c.Args) == 0 {
				mode := "uniform"
				if ctx.RenderCfg.OpenPoseColors {
					mode = "openpose"
				}
				c.Printf("canvas:    %dx%d\n", ctx.RenderCfg.Width, ctx.RenderCfg.Height)
				c.Printf("bones:     %v (width %.1f)\n", ctx.RenderCfg.ShowBones, ctx.RenderCfg.BoneWidth)
				c.Printf("keypoints: %v (radius %.1f)\n", ctx.RenderCfg.ShowKeypoints, ctx.RenderCfg.KeypointRadius)
				c.Printf("colors:    %s\n", mode)
				return
			}

			switch *colors {
			case "":
			case "openpose":
				ctx.RenderCfg.OpenPoseColors = true
			case "uniform":
				ctx.RenderCfg.OpenPoseColors = false
				ctx.RenderCfg.Custom = color.White
			default:
				c.Err(fmt.Errorf("unknown color mode %s", *colors))
				return
			}

			ctx.RenderCfg.Width = *width
			ctx.RenderCfg.Height = *height
			ctx.RenderCfg.BoneWidth = *boneWidth
			ctx.RenderCfg.KeypointRadius = *radius
			ctx.RenderCfg.ShowBones = *bones
			ctx.RenderCfg.ShowKeypoints = *keypoints

			if err := ctx.RenderCfg.Validate(); err != nil {
				c.Err(err)
				return
			}

			c.Println("OK")
		},
	}
}
