package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/justinfleek/lattice-pose/comfy"
)

func fetchCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "fetch",
		Help:      "run a pose preprocessor on an image via the comfy backend, usage: fetch [--preprocessor=<id>] <image>",
		Completer: createFsEntryCompleter(),
		LongHelp: `Usage: fetch [options] <image>

Runs the image through a remote pose preprocessor and loads the
detected keypoints as the current frame set. The conditioning
image is written next to the input.

Options:
  --preprocessor=<id>  preprocessor to run (` + preprocessorList() + `)
  --resolution=<N>     detection resolution`,
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("fetch", flag.ContinueOnError)
			preprocessor := flagSet.String("preprocessor", ctx.Config.Comfy.Preprocessor, "preprocessor id")
			resolution := flagSet.Int("resolution", 0, "detection resolution")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}
			args := flagSet.Args()

			if len(args) == 0 {
				c.Err(errors.New("missing source image"))
				return
			}

			srcName := args[0]
			data, err := os.ReadFile(srcName)
			if err != nil {
				c.Err(fmt.Errorf("failed to read %s: %s", srcName, err.Error()))
				return
			}

			options := map[string]interface{}{}
			if *resolution > 0 {
				options["resolution"] = *resolution
			}

			client := comfy.NewClient(ctx.Config.ComfyAddress())
			c.Printf("running %s on %s...\n", *preprocessor, srcName)

			result, err := client.Execute(context.Background(), *preprocessor, data, options)
			if err != nil {
				c.Err(fmt.Errorf("preprocessing failed: %s", err.Error()))
				return
			}

			base := srcName[:len(srcName)-len(filepath.Ext(srcName))]
			outputName := base + "_pose.png"
			if err := os.WriteFile(outputName, result.Image, 0644); err != nil {
				c.Err(fmt.Errorf("failed to write %s: %s", outputName, err.Error()))
				return
			}
			c.Printf("wrote %s\n", outputName)

			if len(result.Documents) > 0 {
				ctx.Frames = result.Documents
				ctx.SourcePath = outputName
				c.Printf("loaded %d frame(s) of detected keypoints\n", len(result.Documents))
				c.SetPrompt(ctx.prompt())
			}
		},
	}
}

func preprocessorList() string {
	list := ""
	for i, p := range comfy.Preprocessors() {
		if i > 0 {
			list += ", "
		}
		list += p.ID
	}
	return list
}
