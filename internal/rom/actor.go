package rom

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const actorEntrySize = 16

const (
	noXRotationFlag = 0x8000
	noYRotationFlag = 0x4000
	noZRotationFlag = 0x2000
	actorIDMask     = 0x0FFF
	rotationMask    = 0xFF80
	rotationShift   = 7
)

// Vec3 is a simple x/y/z vector.
type Vec3 struct {
	X int16
	Y int16
	Z int16
}

// ActorEntry are entries that point to the dynamic objects present in a Room.
// Sources:
//   - https://wiki.cloudmodding.com/mm/Scenes_and_Rooms#Actor_List
type ActorEntry struct {
	ID                uint16
	SpawnTimeFlags    uint16
	SceneCommandIndex byte
	Initialization    uint16

	NoXRotation bool
	NoYRotation bool
	NoZRotation bool

	Position Vec3
	Rotation Vec3

	Description *ActorDescription `json:",omitempty"`
}

// load decodes one 16-byte entry, b must hold at least actorEntrySize bytes.
func (a *ActorEntry) load(b []byte) {
	v := binary.BigEndian.Uint16(b[0:])
	a.NoXRotation = v&noXRotationFlag > 0
	a.NoYRotation = v&noYRotationFlag > 0
	a.NoZRotation = v&noZRotationFlag > 0
	a.ID = v & actorIDMask

	a.Position = Vec3{
		X: int16(binary.BigEndian.Uint16(b[2:])),
		Y: int16(binary.BigEndian.Uint16(b[4:])),
		Z: int16(binary.BigEndian.Uint16(b[6:])),
	}

	// Rotations use the top 9 bits, the rest packs spawn time and scene
	// command index.
	x := binary.BigEndian.Uint16(b[8:])
	y := binary.BigEndian.Uint16(b[10:])
	z := binary.BigEndian.Uint16(b[12:])
	a.Rotation = Vec3{
		X: int16((x & rotationMask) >> rotationShift),
		Y: int16((y & rotationMask) >> rotationShift),
		Z: int16((z & rotationMask) >> rotationShift),
	}
	a.SpawnTimeFlags = (x&0x0007)<<7 | z&0x007F
	a.SceneCommandIndex = byte(y & 0x007F)

	a.Initialization = binary.BigEndian.Uint16(b[14:])
}

// ActorDescription is actor data scraped from the CloudModding wiki.
type ActorDescription struct {
	ID             uint16
	FileName       string
	Object         uint16
	Translation    string
	Identification string
}

// ActorCatalog maps Actor IDs to their debug information and human-readable
// names. A nil catalog describes nothing.
type ActorCatalog map[uint16]ActorDescription

// LoadActorCatalog decodes a JSON array of descriptions.
func LoadActorCatalog(r io.Reader) (ActorCatalog, error) {
	var list []ActorDescription
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode actor catalog: %w", err)
	}

	catalog := make(ActorCatalog, len(list))
	for _, d := range list {
		catalog[d.ID] = d
	}
	return catalog, nil
}

// Describe returns the description of id if the catalog has one.
func (c ActorCatalog) Describe(id uint16) (*ActorDescription, bool) {
	d, ok := c[id]
	if !ok {
		return nil, false
	}
	return &d, true
}
