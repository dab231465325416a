// Package rom reads a decompressed The Legend of Zelda: Majora's Mask (NTSC 1.0)
// ROM and exposes its file table, scenes, rooms and messages.
//
// Offsets and layouts follow the CloudModding wiki:
//   - https://wiki.cloudmodding.com/mm/File_List
//   - https://wiki.cloudmodding.com/mm/Scene_Table
//   - https://wiki.cloudmodding.com/mm/Scenes_and_Rooms
//   - https://wiki.cloudmodding.com/mm/Text_Format
package rom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Size is the byte size of a decompressed ROM.
const Size = 64 * 1024 * 1024

// Checksums of the NTSC 1.0 release.
const (
	CRC1 = 0xDA6983E7
	CRC2 = 0x50674458
)

const (
	buildOffset = 0x0001A4D0

	dmaTableOffset = 0x0001A500
	dmaTableLen    = 1552

	sceneTableOffset = 0x00C5A1E0
	sceneTableLen    = 113

	messageTableOffset = 0x00C5D0D8
	messageTableLen    = 4589
	messageDataStart   = 0x00AD1000

	buildDateLayout = "06-01-02 15:04:05"
	displayLayout   = "2006-01-02 15:04:05"
)

// Magic is the first word of a big-endian (z64) ROM.
var Magic = [4]byte{0x80, 0x37, 0x12, 0x40}

var (
	// ErrInvalidSize is returned when the input is not exactly Size bytes.
	ErrInvalidSize = errors.New("invalid ROM size")
	// ErrInvalidMagic is returned when the input is not a big-endian ROM.
	ErrInvalidMagic = errors.New("invalid ROM header")
	// ErrChecksum is returned when the CRCs do not match NTSC 1.0.
	ErrChecksum = errors.New("ROM checksum mismatch")
	// ErrOutOfBounds is returned when a table or segment points outside the ROM.
	ErrOutOfBounds = errors.New("offset out of bounds")
	// ErrNotFound is returned by the View lookups.
	ErrNotFound = errors.New("not found")
)

// Header is the cartridge header found at offset 0.
// Sources:
//   - https://github.com/mupen64plus/mupen64plus-core/blob/master/src/api/m64p_types.h
type Header struct {
	Magic          [4]byte   // 0x00
	ClockRate      uint32    // 0x04
	PC             uint32    // 0x08
	Release        uint32    // 0x0C
	CRC1           uint32    // 0x10
	CRC2           uint32    // 0x14
	_              [2]uint32 // 0x18
	Name           [20]byte  // 0x20
	_              uint32    // 0x34
	ManufacturerID uint32    // 0x38
	CartridgeID    uint16    // 0x3C game serial number
	CountryCode    uint16    // 0x3E
}

// ROM holds the fixed-position tables of the ROM.
type ROM struct {
	Header

	Build [32]byte // 0x0001A4D0

	DMAData            [dmaTableLen]DMAEntry                  // 0x0001A500
	InternalSceneTable [sceneTableLen]InternalSceneTableEntry // 0x00C5A1E0
	MessageTable       [messageTableLen]MessageEntry          // 0x00C5D0D8
}

// readROM decodes the fixed tables out of data, which must be Size bytes.
func readROM(data []byte, checkCRC bool) (*ROM, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("%w: expected %d bytes of ROM data, got %d", ErrInvalidSize, Size, len(data))
	}

	r := &ROM{}
	sections := []struct {
		offset int
		dst    any
	}{
		{0, &r.Header},
		{buildOffset, &r.Build},
		{dmaTableOffset, &r.DMAData},
		{sceneTableOffset, &r.InternalSceneTable},
		{messageTableOffset, &r.MessageTable},
	}
	for _, s := range sections {
		if err := binary.Read(bytes.NewReader(data[s.offset:]), binary.BigEndian, s.dst); err != nil {
			return nil, fmt.Errorf("read table at 0x%08X: %w", s.offset, err)
		}
	}

	if err := r.validate(checkCRC); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *ROM) validate(checkCRC bool) error {
	if r.Magic != Magic {
		return fmt.Errorf(
			"%w: expected 0x%08X got 0x%08X, a valid decompressed big-endian (z64) ROM is required",
			ErrInvalidMagic,
			binary.BigEndian.Uint32(Magic[:]),
			binary.BigEndian.Uint32(r.Magic[:]),
		)
	}

	if !checkCRC {
		return nil
	}
	if r.CRC1 != CRC1 {
		return fmt.Errorf("%w: CRC1 expected 0x%08X got 0x%08X", ErrChecksum, uint32(CRC1), r.CRC1)
	}
	if r.CRC2 != CRC2 {
		return fmt.Errorf("%w: CRC2 expected 0x%08X got 0x%08X", ErrChecksum, uint32(CRC2), r.CRC2)
	}

	return nil
}

// Title returns the internal name with padding removed.
func (r *ROM) Title() string {
	return strings.TrimRight(string(r.Name[:]), " \x00")
}

// ParseBuild returns the team and date of the build string. The date is
// reformatted as YYYY-MM-DD hh:mm:ss when it parses, and returned raw otherwise.
func (r *ROM) ParseBuild() (string, string) {
	parts := strings.SplitN(string(bytes.TrimRight(r.Build[:], "\x00")), "\x00", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}

	date, err := time.Parse(buildDateLayout, parts[1])
	if err != nil {
		return parts[0], parts[1]
	}
	return parts[0], date.Format(displayLayout)
}
