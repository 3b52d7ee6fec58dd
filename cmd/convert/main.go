package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/justinfleek/lattice-pose/archive"
	"github.com/justinfleek/lattice-pose/config"
	"github.com/justinfleek/lattice-pose/encoding/openpose"
	"github.com/justinfleek/lattice-pose/export"
	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/render"
	"github.com/justinfleek/lattice-pose/sheet"
)

func main() {
	inputName := flag.String("i", "", "file to convert (keypoint json or pose bundle)")
	outputName := flag.String("o", "", "output filename")
	extract := flag.String("e", "", "extract, p - rendered PNG, j - normalized json, s - PDF sheet")
	flag.Parse()
	var err error

	switch *extract {

	case "j":
		err = normalize(*inputName, *outputName)
	case "s":
		err = contactSheet(*inputName, *outputName)
	case "":
		fallthrough
	case "p":
		err = convert(*inputName, *outputName)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadFrames reads a keypoint json file or a pose bundle.
func loadFrames(inputName string) ([]*openpose.Document, error) {
	if inputName == "" {
		return nil, errors.New("missing input file")
	}

	if strings.EqualFold(filepath.Ext(inputName), archive.Ext) {
		file, err := os.Open(inputName)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		fi, err := file.Stat()
		if err != nil {
			return nil, err
		}

		bundle := &archive.Bundle{}
		if err := bundle.Read(file, fi.Size()); err != nil {
			return nil, err
		}

		docs := make([]*openpose.Document, 0, len(bundle.Frames))
		for _, f := range bundle.Frames {
			docs = append(docs, f.Document)
		}
		return docs, nil
	}

	data, err := os.ReadFile(inputName)
	if err != nil {
		return nil, err
	}
	return openpose.ParseAny(data)
}

func outputOrDefault(inputName, outputName, ext string) string {
	if outputName != "" {
		return outputName
	}
	nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
	return nameOnly + ext
}

func convert(inputName, outputName string) error {
	docs, err := loadFrames(inputName)
	if err != nil {
		return err
	}

	outputName = outputOrDefault(inputName, outputName, ".png")
	nameOnly := strings.TrimSuffix(outputName, filepath.Ext(outputName))

	cfg := config.Default().RenderConfig()
	renderer := render.New()

	for i, doc := range docs {
		framePNG := outputName
		if len(docs) > 1 {
			framePNG = fmt.Sprintf("%s_frame_%d.png", nameOnly, i)
		}

		img, err := renderer.Render(doc.Poses(), cfg)
		if err != nil {
			return fmt.Errorf("can't render frame %d %w", i, err)
		}

		data, err := export.PNG(img)
		if err != nil {
			return err
		}

		if err := os.WriteFile(framePNG, data, 0644); err != nil {
			return fmt.Errorf("can't write outputfile %w", err)
		}
	}

	return nil
}

func normalize(inputName, outputName string) error {
	docs, err := loadFrames(inputName)
	if err != nil {
		return err
	}

	outputName = outputOrDefault(inputName, outputName, ".json")

	var data []byte
	if len(docs) == 1 {
		data, err = openpose.MarshalIndent(openpose.Export(docs[0].Poses()))
	} else {
		frames := make([]*openpose.Document, len(docs))
		for i, doc := range docs {
			frames[i] = openpose.Export(doc.Poses())
		}
		data, err = openpose.MarshalFrames(frames)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(outputName, data, 0644)
}

func contactSheet(inputName, outputName string) error {
	docs, err := loadFrames(inputName)
	if err != nil {
		return err
	}

	outputName = outputOrDefault(inputName, outputName, ".pdf")

	frames := make([][]pose.Pose, len(docs))
	for i, doc := range docs {
		frames[i] = doc.Poses()
	}

	options := sheet.GeneratorOptions{
		AddPageNumbers: true,
	}
	gen := sheet.CreateGenerator(outputName, options)
	return gen.Generate(frames, config.Default().RenderConfig())
}
