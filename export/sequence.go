package export

import (
	"context"
	"image"

	"golang.org/x/sync/semaphore"

	"github.com/justinfleek/lattice-pose/log"
	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/render"
)

// DefaultBatchSize bounds how many frames render at once in Sequence.
const DefaultBatchSize = 4

// Sequence renders a frame sequence under one shared config with
// bounded concurrency. Output order matches input order; every frame
// gets its own canvas, so frames never influence each other. When
// several frames fail, the error of the earliest frame wins.
func Sequence(ctx context.Context, frames [][]pose.Pose, cfg render.Config, batchSize int64) ([]image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	r := render.New()
	images := make([]image.Image, len(frames))
	errs := make([]error, len(frames))

	sem := semaphore.NewWeighted(batchSize)
	for i := range frames {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Trace.Printf("Failed to acquire semaphore: %v", err)
			return nil, err
		}
		go func(i int) {
			defer sem.Release(1)
			img, err := r.Render(frames[i], cfg)
			if err != nil {
				log.Trace.Printf("Can't render frame %d: %v", i, err)
				errs[i] = err
				return
			}
			images[i] = img
		}(i)
	}

	// Wait for all goroutines to finish
	if err := sem.Acquire(ctx, batchSize); err != nil {
		log.Trace.Printf("Failed to acquire semaphore: %v", err)
		return nil, err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return images, nil
}
