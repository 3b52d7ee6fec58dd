package archive

import (
	"archive/zip"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
)

// Write streams the bundle as a zip. The manifest frame count is
// brought in line with the frames actually present before writing.
func (b *Bundle) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	b.Manifest.FrameCount = len(b.Frames)
	manifest, err := json.MarshalIndent(b.Manifest, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode manifest")
	}
	if err := writeEntry(zw, "manifest.json", manifest); err != nil {
		return err
	}

	for i, frame := range b.Frames {
		if frame.Document == nil {
			return errors.Errorf("frame %d has no document", i)
		}

		doc, err := openpose.Marshal(frame.Document)
		if err != nil {
			return errors.Wrapf(err, "failed to encode frame %d", i)
		}
		if err := writeEntry(zw, frameName(i), doc); err != nil {
			return err
		}

		if len(frame.Render) > 0 {
			if err := writeEntry(zw, renderName(i), frame.Render); err != nil {
				return err
			}
		}
	}

	return zw.Close()
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}
