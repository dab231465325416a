package rom

import (
	"encoding/binary"
	"fmt"
)

const roomListEntrySize = 8

// InternalSceneTableEntry is a single entry of the InternalSceneTable.
// Sources:
//   - https://wiki.cloudmodding.com/mm/Scene_Table
//
// binpacked, do not change struct size
type InternalSceneTableEntry struct {
	VROMStart          uint32
	VROMEnd            uint32
	EntranceMessageID  uint16
	Padding0           uint8 `json:"-"`
	SceneConfiguration uint8
	Padding1           uint32 `json:"-"`
}

func (e *InternalSceneTableEntry) validate() error {
	if e.Padding0 != 0 {
		return fmt.Errorf("padding0 is not 0: %X", e.Padding0)
	}
	if e.Padding1 != 0 {
		return fmt.Errorf("padding1 is not 0: %X", e.Padding1)
	}
	return nil
}

// Scene holds a Scene headers and the rooms it references. Unused scene table
// entries are kept with Valid false.
// Sources:
//   - https://wiki.cloudmodding.com/mm/Scenes_and_Rooms#Header_Commands
type Scene struct {
	InternalSceneTableEntry
	LocationHeader

	Name            string
	EntranceMessage string
	Valid           bool
	DataStartOffset uint32 // VROM offset of the scene data, right after the header

	Rooms []Room
}

// load parses the scene header. Unknown commands are reported to warn but do
// not stop parsing.
func (s *Scene) load(data []byte, entry InternalSceneTableEntry, warn func(cmd headerCommand, err error)) error {
	s.InternalSceneTableEntry = entry
	s.Name = FileName(entry.VROMStart)

	if entry.VROMStart == 0 && entry.VROMEnd == 0 {
		return nil
	}
	if err := entry.validate(); err != nil {
		return fmt.Errorf("scene at 0x%08X: %w", entry.VROMStart, err)
	}
	if entry.VROMEnd <= entry.VROMStart || uint64(entry.VROMEnd) > uint64(len(data)) {
		return fmt.Errorf("%w: scene 0x%08X-0x%08X", ErrOutOfBounds, entry.VROMStart, entry.VROMEnd)
	}

	cmds, dataStart, err := readHeaderCommands(data, entry.VROMStart)
	if err != nil {
		return fmt.Errorf("scene at 0x%08X: %w", entry.VROMStart, err)
	}
	for _, cmd := range cmds {
		if err := s.apply(cmd); err != nil {
			warn(cmd, err)
		}
	}

	s.DataStartOffset = dataStart
	s.Valid = true

	return nil
}

// loadRooms reads the room list pointed to by the rooms command.
func (s *Scene) loadRooms(data []byte) error {
	if !s.Valid || s.RoomsCount == 0 {
		return nil
	}

	listStart := segmentAddress(s.VROMStart, s.RoomsSegmentOffset)
	listEnd := uint64(listStart) + uint64(s.RoomsCount)*roomListEntrySize
	if listEnd > uint64(len(data)) {
		return fmt.Errorf("%w: room list of scene 0x%08X at 0x%08X", ErrOutOfBounds, s.VROMStart, listStart)
	}

	s.Rooms = make([]Room, s.RoomsCount)
	for i := range s.Rooms {
		offset := listStart + uint32(i)*roomListEntrySize
		room := &s.Rooms[i]
		room.ID = byte(i)
		room.VROMStart = binary.BigEndian.Uint32(data[offset:])
		room.VROMEnd = binary.BigEndian.Uint32(data[offset+4:])
		room.SceneName = s.sceneLabel()
		room.SceneVROMStart = s.VROMStart

		if err := room.load(data); err != nil {
			return fmt.Errorf("room %d of scene 0x%08X: %w", i, s.VROMStart, err)
		}
	}

	return nil
}

// sceneLabel prefers the in-game entrance text over the file name.
func (s *Scene) sceneLabel() string {
	if s.EntranceMessage != "" {
		return s.EntranceMessage
	}
	return s.Name
}
