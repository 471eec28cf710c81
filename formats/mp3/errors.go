package mp3

import "errors"

var (
	ErrNotMp3File = errors.New("not an MP3 file")
)
