package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	headerEndCommand   byte = 0x14
	headerCommandSize       = 8
	maxHeaderCommands       = 64
	segmentOffsetMask       = 0x00FFFFFF
	headerCountMask         = 0x00FF0000
	headerCountShift        = 16
	commandByteShift        = 24
	unknownCommandText      = "unknown location header command"
)

var errUnknownCommand = errors.New(unknownCommandText)

// LocationHeader holds the header commands of both Scenes and Rooms as most
// of them are shared.
//
// Headers are two uint32 with the first byte determining what the data is,
// the data here is already interpreted, eg. for a header described as
// "0x12xx5678 0x0000yyyy" fed 0x12345678 0x9ABCDEF0 the first value would be
// 0x34 and the second one 0xDEF0.
//
// Headers marked with an asterisk are mandatory.
type LocationHeader struct {
	StartPositionsCount                       byte   // 0x00xx0000 *
	StartPositionsSegmentOffset               uint32 // 0xyyyyyyyy
	ActorsCount                               byte   // 0x01xx0000
	ActorsSegmentOffset                       uint32 // 0xyyyyyyyy
	CamerasCount                              byte   // 0x02xx0000
	CamerasSegmentOffset                      uint32 // 0xyyyyyyyy
	CollisionHeaderSegmentOffset              uint32 // 0x03000000 0xyyyyyyyy *
	RoomsCount                                byte   // 0x04xx0000 *
	RoomsSegmentOffset                        uint32 // 0xyyyyyyyy
	WindDirectionX                            byte   // 0x05000000 0xxxyyzzww
	WindDirectionY                            byte
	WindDirectionZ                            byte
	WindStrength                              byte
	EntrancesCount                            byte   // 0x06xx0000 *
	EntrancesSegmentOffset                    uint32 // 0xyyyyyyyy
	SpecialObjectsByte0                       byte   // 0x07??0000 unknown purpose *
	SpecialObjects                            uint16 // 0x0000xxxx
	RoomBehavior0                             byte   // 0x08xx0000 0x0000yyzz affects Sun's Song, backflipping with A
	RoomBehavior1                             byte   // unknown
	RoomBehavior2                             byte   // animations/tunic
	MeshSegmentOffset                         uint32 // 0x0A000000 0xyyyyyyyy *
	ObjectsCount                              byte   // 0x0Bxx0000
	ObjectsSegmentOffset                      uint32 // 0xyyyyyyyy
	LightSettingsCount                        byte   // 0x0Cxx0000
	LightSettingsSegmentOffset                uint32 // 0xyyyyyyyy
	PathsSegmentOffset                        uint32 // 0x0D000000 0xyyyyyyyy
	ActorTransitionsCount                     byte   // 0x0Exx0000
	ActorTransitionsSegmentOffset             uint32 // 0xyyyyyyyy
	EnvironmentSettingsCount                  byte   // 0x0Fxx0000 *
	EnvironmentSettingsSegmentOffset          uint32 // 0xyyyyyyyy
	TimeStart                                 uint16 // 0x10000000 0xxxxxyy00 (0xFFFF = current time)
	TimeSpeed                                 byte   // defaults to 0x03
	SkyboxNumber                              byte   // 0x11000000 0xxx0y0z00 *
	SkyboxCast                                byte
	SkyboxFog                                 byte
	SkyboxDisable                             bool   // 0x12000000 0xxxyy0000 true if xx > 0
	SkyboxModifier                            byte   // unknown
	ExitsSegmentOffset                        uint32 // 0x13000000 0xyyyyyyyy
	SoundReverb                               byte   // 0x15xx0000 0x0000yyzz *
	SoundNightSFX                             byte
	SoundBackgroundSequence                   byte
	SoundEcho                                 byte   // 0x16000000 0x000000xx *
	CutscenesCount                            byte   // 0x17xx0000
	CutscenesSegmentOffset                    uint32 // 0xyyyyyyyy
	AlternateHeadersSegmentOffset             uint32 // 0x18000000 0xxxxxxxxx
	IsWorldMapLocation                        bool   // 0x19000000 0x00000000 (presence = true)
	TextureAnimationsSegmentOffset            uint32 // 0x1A000000 0xxxxxxxxx *
	CamerasAndCutscenesForActorsCount         byte   // 0x1Bxx0000 *
	CamerasAndCutscenesForActorsSegmentOffset uint32 // 0xyyyyyyyy
	MinimapsSegmentOffset                     uint32 // 0x1C000000 0xxxxxxxxx *
	MapChestPositionsCount                    byte   // 0x1Exx0000
	MapChestPositionsSegmentOffset            uint32 // 0xyyyyyyyy
}

// headerCommand is one raw 8-byte header entry.
type headerCommand struct {
	Offset uint32
	A, B   uint32
}

func (c headerCommand) id() byte {
	return byte(c.A >> commandByteShift)
}

func (c headerCommand) count() byte {
	return byte((c.A & headerCountMask) >> headerCountShift)
}

// readHeaderCommands reads commands starting at start up to and excluding the
// end command. It returns the commands and the offset right after the end
// command, where the location data starts.
func readHeaderCommands(data []byte, start uint32) ([]headerCommand, uint32, error) {
	cmds := make([]headerCommand, 0, 16)
	offset := start

	for range maxHeaderCommands {
		end := uint64(offset) + headerCommandSize
		if end > uint64(len(data)) {
			return nil, 0, fmt.Errorf("%w: header command at 0x%08X", ErrOutOfBounds, offset)
		}

		cmd := headerCommand{
			Offset: offset,
			A:      binary.BigEndian.Uint32(data[offset:]),
			B:      binary.BigEndian.Uint32(data[offset+4:]),
		}
		offset += headerCommandSize

		if cmd.id() == headerEndCommand {
			return cmds, offset, nil
		}
		cmds = append(cmds, cmd)
	}

	return nil, 0, fmt.Errorf("no end command within %d header commands at 0x%08X", maxHeaderCommands, start)
}

// apply decodes a single command into the header.
//
//nolint:gocyclo,funlen // one case per documented command
func (l *LocationHeader) apply(cmd headerCommand) error {
	a, b := cmd.A, cmd.B

	switch cmd.id() {
	case 0x00:
		l.StartPositionsCount = cmd.count()
		l.StartPositionsSegmentOffset = b
	case 0x01:
		l.ActorsCount = cmd.count()
		l.ActorsSegmentOffset = b
	case 0x02:
		l.CamerasCount = cmd.count()
		l.CamerasSegmentOffset = b
	case 0x03:
		l.CollisionHeaderSegmentOffset = b
	case 0x04:
		l.RoomsCount = cmd.count()
		l.RoomsSegmentOffset = b
	case 0x05:
		l.WindDirectionX = byte(b >> 24)
		l.WindDirectionY = byte(b >> 16)
		l.WindDirectionZ = byte(b >> 8)
		l.WindStrength = byte(b)
	case 0x06:
		l.EntrancesCount = cmd.count()
		l.EntrancesSegmentOffset = b
	case 0x07:
		l.SpecialObjectsByte0 = cmd.count()
		l.SpecialObjects = uint16(b)
	case 0x08:
		l.RoomBehavior0 = cmd.count()
		l.RoomBehavior1 = byte(b >> 8)
		l.RoomBehavior2 = byte(b)
	case 0x09:
		// Saves two values to the stack that are overwritten before being read.
	case 0x0A:
		l.MeshSegmentOffset = b
	case 0x0B:
		l.ObjectsCount = cmd.count()
		l.ObjectsSegmentOffset = b
	case 0x0C:
		l.LightSettingsCount = cmd.count()
		l.LightSettingsSegmentOffset = b
	case 0x0D:
		l.PathsSegmentOffset = b
	case 0x0E:
		l.ActorTransitionsCount = cmd.count()
		l.ActorTransitionsSegmentOffset = b
	case 0x0F:
		l.EnvironmentSettingsCount = cmd.count()
		l.EnvironmentSettingsSegmentOffset = b
	case 0x10:
		l.TimeStart = uint16(b >> 16)
		l.TimeSpeed = byte(b >> 8)
	case 0x11:
		l.SkyboxNumber = byte(b >> 24)
		l.SkyboxCast = byte((b >> 16) & 0x0F)
		l.SkyboxFog = byte((b >> 8) & 0x0F)
	case 0x12:
		l.SkyboxDisable = b&0xFF000000 > 0
		l.SkyboxModifier = byte(b >> 16)
	case 0x13:
		l.ExitsSegmentOffset = b
	case 0x15:
		l.SoundReverb = cmd.count()
		l.SoundNightSFX = byte(b >> 8)
		l.SoundBackgroundSequence = byte(b)
	case 0x16:
		l.SoundEcho = byte(b)
	case 0x17:
		l.CutscenesCount = cmd.count()
		l.CutscenesSegmentOffset = b
	case 0x18:
		l.AlternateHeadersSegmentOffset = b
	case 0x19:
		l.IsWorldMapLocation = true
	case 0x1A:
		l.TextureAnimationsSegmentOffset = b
	case 0x1B:
		l.CamerasAndCutscenesForActorsCount = cmd.count()
		l.CamerasAndCutscenesForActorsSegmentOffset = b
	case 0x1C:
		l.MinimapsSegmentOffset = b
	case 0x1E:
		l.MapChestPositionsCount = cmd.count()
		l.MapChestPositionsSegmentOffset = b
	default:
		return fmt.Errorf("%w 0x%02X (0x%08X 0x%08X)", errUnknownCommand, cmd.id(), a, b)
	}

	return nil
}

// segmentAddress resolves a segment offset relative to the file at base.
func segmentAddress(base, segmentOffset uint32) uint32 {
	return base + segmentOffset&segmentOffsetMask
}
