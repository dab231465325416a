package rom

import "fmt"

// A Room is a room within a Scene.
type Room struct {
	ID              byte
	VROMStart       uint32
	VROMEnd         uint32
	DataStartOffset uint32 // VROM offset to the Room data
	LocationHeader

	SceneName      string
	SceneVROMStart uint32 // VROM offset of the Scene this Room belongs to

	ActorList []ActorEntry

	data []byte
}

// Data returns the room contents that follow its header.
func (r Room) Data() []byte {
	return r.data
}

func (r *Room) load(data []byte) error {
	if r.VROMStart == 0 {
		return nil
	}
	if r.VROMEnd <= r.VROMStart || uint64(r.VROMEnd) > uint64(len(data)) {
		return fmt.Errorf("%w: room 0x%08X-0x%08X", ErrOutOfBounds, r.VROMStart, r.VROMEnd)
	}

	cmds, dataStart, err := readHeaderCommands(data, r.VROMStart)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		// Rooms use a handful of commands scenes never do, ignore the rest.
		_ = r.apply(cmd)
	}
	r.DataStartOffset = dataStart

	return r.loadActors(data)
}

func (r *Room) loadActors(data []byte) error {
	r.ActorList = make([]ActorEntry, r.ActorsCount)
	if r.ActorsCount == 0 {
		return nil
	}

	listStart := segmentAddress(r.VROMStart, r.ActorsSegmentOffset)
	listEnd := uint64(listStart) + uint64(r.ActorsCount)*actorEntrySize
	if listEnd > uint64(len(data)) {
		return fmt.Errorf("%w: actor list at 0x%08X", ErrOutOfBounds, listStart)
	}

	for i := range r.ActorList {
		offset := listStart + uint32(i)*actorEntrySize
		r.ActorList[i].load(data[offset : offset+actorEntrySize])
	}

	return nil
}

// loadData sets the raw room data (without headers). The room end is known
// from the room list but the file table is authoritative when it has one.
func (r *Room) loadData(data []byte, end uint32) {
	if r.DataStartOffset == 0 || end <= r.DataStartOffset || uint64(end) > uint64(len(data)) {
		return
	}
	r.VROMEnd = end
	r.data = data[r.DataStartOffset:end:end]
}
