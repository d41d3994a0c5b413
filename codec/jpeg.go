package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/jpeg"

	"lukechampine.com/jsteg"
)

/*
 * JPEG re-encoding destroys pixel LSBs, so payloads bound for a JPEG
 * container are carried in the DCT coefficient domain instead. The
 * payload is prefixed with its length so RevealJpeg knows where the
 * hidden data ends.
 */

const jpegLengthPrefix = 8

// JpegCapacity returns how many payload bytes the carrier can hold
// in the coefficient domain.
func JpegCapacity( jpgBytes []byte ) (int, error) {
	img, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return 0, err
	}
	capacity := jsteg.Capacity( img, nil )
	if capacity < jpegLengthPrefix {
		return 0, nil
	}
	return capacity - jpegLengthPrefix, nil
}

func HideJpeg( jpgBytes, data []byte ) ([]byte, error) {
	img, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return nil, err
	}
	capacity := jsteg.Capacity( img, nil )
	if capacity < len(data) + jpegLengthPrefix {
		return nil, fmt.Errorf("Not enough space to embed data ( %d < %d )",
			capacity, len(data) + jpegLengthPrefix )
	}

	framed := make([]byte, len(data) + jpegLengthPrefix)
	binary.LittleEndian.PutUint64( framed, uint64(len(data)) )
	copy( framed[jpegLengthPrefix:], data )

	outbuf := new(bytes.Buffer)
	if err = jsteg.Hide( outbuf, img, framed, nil ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealJpeg( jpgBytes []byte ) ([]byte, error) {
	if len(jpgBytes) == 0 {
		return nil, fmt.Errorf("JPEG: empty input")
	}
	hidden, err := jsteg.Reveal( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return nil, err
	}
	if len(hidden) < jpegLengthPrefix {
		return nil, fmt.Errorf("JPEG: no embedded data")
	}
	size := binary.LittleEndian.Uint64( hidden[:jpegLengthPrefix] )
	if uint64(len(hidden) - jpegLengthPrefix) < size {
		return nil, fmt.Errorf("JPEG: Invalid length encoding")
	}
	return hidden[jpegLengthPrefix : jpegLengthPrefix + size], nil
}
