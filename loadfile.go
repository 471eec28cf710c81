// SPDX-License-Identifier: EPL-2.0

package chanmix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nv8/chanmix/audio"
	"github.com/nv8/chanmix/formats/aiff"
	"github.com/nv8/chanmix/formats/mp3"
	"github.com/nv8/chanmix/formats/vorbis"
	"github.com/nv8/chanmix/formats/wav"
)

// ErrUnknownFormat reports a file extension with no registered decoder.
var ErrUnknownFormat = errors.New("no decoder for file format")

var decoders = map[string]audio.Decoder{
	".wav":  wav.Decoder{},
	".mp3":  mp3.Decoder{},
	".ogg":  vorbis.Decoder{},
	".aiff": aiff.Decoder{},
	".aif":  aiff.Decoder{},
}

// LoadFile decodes an audio file into the registry, picking the decoder
// by extension, and returns the new asset id.
func LoadFile(r *audio.Registry, path string) (audio.AssetID, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := decoders[ext]
	if !ok {
		return audio.NoAsset, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.NoAsset, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.NoAsset, fmt.Errorf("decoding %s: %w", path, err)
	}
	return r.Load(src)
}
