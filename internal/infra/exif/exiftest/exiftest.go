// Package exiftest builds EXIF-bearing images for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
)

// JPEG returns a minimal JPEG whose APP1 segment carries a little-endian
// TIFF block with an Exif sub-IFD. dateTimeOriginal is omitted when empty.
func JPEG(dateTimeOriginal string) []byte {
	le := binary.LittleEndian
	var tiff bytes.Buffer
	tiff.WriteString("II")
	binary.Write(&tiff, le, uint16(42))
	binary.Write(&tiff, le, uint32(8))

	// IFD0 at offset 8: one entry pointing at the Exif IFD.
	const exifIFDOffset = 8 + 2 + 12 + 4
	binary.Write(&tiff, le, uint16(1))
	binary.Write(&tiff, le, uint16(0x8769)) // ExifIFDPointer
	binary.Write(&tiff, le, uint16(4))      // LONG
	binary.Write(&tiff, le, uint32(1))
	binary.Write(&tiff, le, uint32(exifIFDOffset))
	binary.Write(&tiff, le, uint32(0))

	if dateTimeOriginal == "" {
		// Exif IFD carrying only ColorSpace.
		binary.Write(&tiff, le, uint16(1))
		binary.Write(&tiff, le, uint16(0xA001))
		binary.Write(&tiff, le, uint16(3)) // SHORT
		binary.Write(&tiff, le, uint32(1))
		binary.Write(&tiff, le, uint32(1))
		binary.Write(&tiff, le, uint32(0))
	} else {
		value := append([]byte(dateTimeOriginal), 0)
		const valueOffset = exifIFDOffset + 2 + 12 + 4
		binary.Write(&tiff, le, uint16(1))
		binary.Write(&tiff, le, uint16(0x9003)) // DateTimeOriginal
		binary.Write(&tiff, le, uint16(2))      // ASCII
		binary.Write(&tiff, le, uint32(len(value)))
		binary.Write(&tiff, le, uint32(valueOffset))
		binary.Write(&tiff, le, uint32(0))
		tiff.Write(value)
	}

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	var jpeg bytes.Buffer
	jpeg.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&jpeg, binary.BigEndian, uint16(len(payload)+2))
	jpeg.Write(payload)
	jpeg.Write([]byte{0xFF, 0xD9})
	return jpeg.Bytes()
}
