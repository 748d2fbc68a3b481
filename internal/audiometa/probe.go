// Package audiometa inspects uploaded audio files for the metadata the
// upload form does not carry: playback duration, embedded cover art and
// tag fields usable as fallbacks. Probing is best-effort; callers treat
// a failed probe as "no metadata", not as an upload failure.
package audiometa

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
	"github.com/tcolgate/mp3"
)

// Meta is what a probe could recover from the file. Zero values mean
// the file did not carry that piece of information.
type Meta struct {
	DurationSecs *int
	Title        string
	Genre        string
	CoverData    []byte
	CoverMIME    string
}

// Probe extracts metadata from the audio file at path based on its
// extension.
func Probe(path string) (*Meta, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".flac":
		return probeFLAC(path)
	case ".mp3":
		return probeMP3(path)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}
}

// probeFLAC reads STREAMINFO for the duration, Vorbis comments for tag
// fields and the first PICTURE block for embedded cover art.
func probeFLAC(path string) (*Meta, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	meta := &Meta{}

	if info, err := f.GetStreamInfo(); err == nil && info.SampleRate > 0 {
		secs := int(float64(info.SampleCount)/float64(info.SampleRate) + 0.5)
		meta.DurationSecs = &secs
	}

	for _, block := range f.Meta {
		switch block.Type {
		case flac.VorbisComment:
			cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				continue
			}
			if titles, err := cmt.Get(flacvorbis.FIELD_TITLE); err == nil && len(titles) > 0 {
				meta.Title = titles[0]
			}
			if genres, err := cmt.Get(flacvorbis.FIELD_GENRE); err == nil && len(genres) > 0 {
				meta.Genre = genres[0]
			}
		case flac.Picture:
			if meta.CoverData != nil {
				continue
			}
			pic, err := flacpicture.ParseFromMetaDataBlock(*block)
			if err != nil {
				continue
			}
			meta.CoverData = pic.ImageData
			meta.CoverMIME = pic.MIME
		}
	}

	return meta, nil
}

// probeMP3 walks the MPEG frames to sum the duration and reads ID3v2
// tags for title, genre and an attached picture.
func probeMP3(path string) (*Meta, error) {
	meta := &Meta{}

	if secs, err := mp3Duration(path); err == nil {
		meta.DurationSecs = &secs
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		// Duration alone is still useful for untagged files.
		if meta.DurationSecs != nil {
			return meta, nil
		}
		return nil, fmt.Errorf("failed to read ID3 tags: %w", err)
	}
	defer tag.Close()

	meta.Title = tag.Title()
	meta.Genre = tag.Genre()

	for _, frame := range tag.GetFrames(tag.CommonID("Attached picture")) {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		meta.CoverData = pic.Picture
		meta.CoverMIME = pic.MimeType
		break
	}

	return meta, nil
}

func mp3Duration(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := mp3.NewDecoder(f)
	var total float64
	var skipped int
	frames := 0
	for {
		var fr mp3.Frame
		if err := dec.Decode(&fr, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if frames == 0 {
				return 0, fmt.Errorf("no decodable MPEG frames: %w", err)
			}
			break // partial decode; use what we have
		}
		total += fr.Duration().Seconds()
		frames++
	}
	return int(total + 0.5), nil
}

// CoverExt maps a cover MIME type to a file extension for storage.
func CoverExt(mime string) string {
	switch strings.ToLower(mime) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".img"
	}
}
