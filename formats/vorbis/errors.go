package vorbis

import "errors"

var (
	ErrNotOggFile          = errors.New("not an Ogg Vorbis file")
	ErrUnsupportedChannels = errors.New("only mono and stereo vorbis supported")
)
