package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/archive"
	"github.com/justinfleek/lattice-pose/encoding/openpose"
)

// loadPoseFile reads either a keypoint JSON file or a pose bundle.
func loadPoseFile(srcName string) ([]*openpose.Document, error) {
	if strings.EqualFold(filepath.Ext(srcName), archive.Ext) {
		file, err := os.Open(srcName)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		fileInfo, err := file.Stat()
		if err != nil {
			return nil, err
		}

		bundle := &archive.Bundle{}
		if err := bundle.Read(file, fileInfo.Size()); err != nil {
			return nil, err
		}

		docs := make([]*openpose.Document, 0, len(bundle.Frames))
		for _, f := range bundle.Frames {
			docs = append(docs, f.Document)
		}
		return docs, nil
	}

	data, err := os.ReadFile(srcName)
	if err != nil {
		return nil, err
	}
	return openpose.ParseAny(data)
}

func openCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "open",
		Help:      "load a keypoint json file or pose bundle",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing source file"))
				return
			}

			srcName := c.Args[0]

			docs, err := loadPoseFile(srcName)
			if err != nil {
				c.Err(fmt.Errorf("failed to load %s: %s", srcName, err.Error()))
				return
			}

			ctx.Frames = docs
			ctx.SourcePath = srcName

			c.Printf("loaded %d frame(s)\n", len(docs))
			c.SetPrompt(ctx.prompt())
		},
	}
}
