package archive

import (
	"archive/zip"
	"encoding/json"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
)

// Read loads a bundle from zip bytes. Files outside the bundle layout
// are ignored; a missing or inconsistent manifest is not.
func (b *Bundle) Read(r io.ReaderAt, size int64) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return errors.Wrap(err, "failed to open bundle")
	}

	manifestFound := false
	docs := make(map[string]*openpose.Document)
	renders := make(map[string][]byte)

	for _, f := range zr.File {
		switch {
		case f.Name == "manifest.json":
			data, err := readZipFile(f)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(data, &b.Manifest); err != nil {
				return errors.Wrap(err, "failed to parse manifest")
			}
			manifestFound = true

		case strings.HasPrefix(f.Name, "frames/") && strings.HasSuffix(f.Name, ".json"):
			data, err := readZipFile(f)
			if err != nil {
				return err
			}
			doc, err := openpose.Unmarshal(data)
			if err != nil {
				return errors.Wrapf(err, "frame %s", f.Name)
			}
			docs[f.Name] = doc

		case strings.HasPrefix(f.Name, "renders/") && strings.HasSuffix(f.Name, ".png"):
			data, err := readZipFile(f)
			if err != nil {
				return err
			}
			renders[f.Name] = data
		}
	}

	if !manifestFound {
		return errors.New("bundle has no manifest.json")
	}
	if b.Manifest.Version != BundleVersion {
		return errors.Errorf("unsupported bundle version %d", b.Manifest.Version)
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	b.Frames = make([]Frame, 0, len(names))
	for _, name := range names {
		base := strings.TrimSuffix(path.Base(name), ".json")
		b.Frames = append(b.Frames, Frame{
			Document: docs[name],
			Render:   renders["renders/"+base+".png"],
		})
	}

	if b.Manifest.FrameCount != len(b.Frames) {
		return errors.Errorf("manifest declares %d frames, bundle holds %d",
			b.Manifest.FrameCount, len(b.Frames))
	}
	return nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", f.Name)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", f.Name)
	}
	return data, nil
}
