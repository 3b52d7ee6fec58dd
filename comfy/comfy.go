// Package comfy executes pose preprocessors on a ComfyUI-compatible
// server: upload the source image, queue a small workflow around the
// preprocessor node, wait for it to run and collect what it produced.
// No estimation happens in this process.
package comfy

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
	"github.com/justinfleek/lattice-pose/log"
)

// Result is what a preprocessor run yields: the conditioning image
// and, for keypoint-emitting nodes, the parsed pose documents.
type Result struct {
	Image     []byte
	Documents []*openpose.Document
}

// Execute runs one preprocessor over the image bytes and gathers its
// outputs. Options override registry defaults by name; unknown option
// keys are ignored.
func (c *Client) Execute(ctx context.Context, preprocessorID string, imageData []byte, options map[string]interface{}) (*Result, error) {
	prep, ok := PreprocessorByID(preprocessorID)
	if !ok {
		return nil, errors.Errorf("unknown preprocessor: %s", preprocessorID)
	}

	imageName, err := c.UploadImage(ctx, "input.png", imageData)
	if err != nil {
		return nil, err
	}

	promptID, err := c.QueuePrompt(ctx, BuildWorkflow(prep, imageName, options))
	if err != nil {
		return nil, err
	}

	entry, err := c.WaitForPrompt(ctx, promptID, DefaultPollInterval)
	if err != nil {
		return nil, err
	}

	return c.collect(ctx, entry)
}

// collect downloads the run's products: the first image of the save
// node, and every json sidecar parsed as pose frames.
func (c *Client) collect(ctx context.Context, entry *HistoryEntry) (*Result, error) {
	result := &Result{}

	nodes := make([]string, 0, len(entry.Outputs))
	for node := range entry.Outputs {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	for _, node := range nodes {
		output := entry.Outputs[node]
		for _, f := range output.Images {
			data, err := c.Download(ctx, f)
			if err != nil {
				return nil, errors.Wrapf(err, "node %s output %s", node, f.Filename)
			}

			if strings.HasSuffix(f.Filename, ".json") {
				docs, err := openpose.ParseAny(data)
				if err != nil {
					log.Trace.Printf("Skipping unparseable keypoint file %s: %v", f.Filename, err)
					continue
				}
				result.Documents = append(result.Documents, docs...)
				continue
			}

			if result.Image == nil {
				result.Image = data
			}
		}
	}

	if result.Image == nil {
		return nil, errors.New("no output image generated")
	}
	return result, nil
}
