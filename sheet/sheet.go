// Package sheet lays rendered pose frames out as a PDF contact sheet,
// one page per frame.
package sheet

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/render"
)

type GeneratorOptions struct {
	Title          string
	AddPageNumbers bool
}

// Generator renders frame sequences into a PDF. Page size follows the
// render canvas, so frames fill their pages edge to edge.
type Generator struct {
	outputFilePath string
	options        GeneratorOptions
}

func CreateGenerator(outputFilePath string, options GeneratorOptions) *Generator {
	return &Generator{outputFilePath: outputFilePath, options: options}
}

// Generate renders every frame under cfg and writes the sheet to the
// configured path.
func (g *Generator) Generate(frames [][]pose.Pose, cfg render.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(frames) == 0 {
		return errors.New("no frames to lay out")
	}

	c := creator.New()
	c.SetPageSize(creator.PageSize{float64(cfg.Width), float64(cfg.Height)})

	if g.options.AddPageNumbers {
		c.DrawFooter(func(block *creator.Block, args creator.FooterFunctionArgs) {
			p := c.NewParagraph(fmt.Sprintf("%d", args.PageNum))
			p.SetFontSize(8)
			w := block.Width() - 20
			h := block.Height() - 10
			p.SetPos(w, h)
			block.Draw(p)
		})
	}

	if g.options.Title != "" {
		if err := g.addTitlePage(c); err != nil {
			return err
		}
	}

	r := render.New()
	for i, frame := range frames {
		img, err := r.Render(frame, cfg)
		if err != nil {
			return errors.Wrapf(err, "failed to render frame %d", i)
		}

		pdfImg, err := c.NewImageFromGoImage(img)
		if err != nil {
			return errors.Wrapf(err, "failed to embed frame %d", i)
		}

		c.NewPage()
		pdfImg.SetPos(0, 0)
		pdfImg.ScaleToWidth(c.Width())
		if err := c.Draw(pdfImg); err != nil {
			return errors.Wrapf(err, "failed to place frame %d", i)
		}
	}

	return c.WriteToFile(g.outputFilePath)
}

func (g *Generator) addTitlePage(c *creator.Creator) error {
	c.NewPage()

	p := c.NewParagraph(g.options.Title)
	p.SetFontSize(14)
	p.SetPos(20, 30)
	return c.Draw(p)
}
