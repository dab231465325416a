package rom

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

// Options tunes how a ROM is parsed.
type Options struct {
	Logger *slog.Logger
	// Actors describes actor IDs found in rooms, may be nil.
	Actors ActorCatalog
	// SkipChecksum accepts ROMs that are not a retail NTSC 1.0 dump.
	SkipChecksum bool
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// A View holds the ROM data and accessors for dynamically placed data.
// A View is read-only once built and safe for concurrent use.
type View struct {
	Files    []File
	Scenes   []Scene
	Messages []Message

	rom  *ROM
	data []byte

	filesByStart  map[uint32]int
	scenesByStart map[uint32]int
	roomsByStart  map[uint32][2]int
}

// Open reads and parses the ROM at path.
func Open(path string, opts Options) (*View, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open ROM: %w", err)
	}
	if stat.Size() != Size {
		return nil, fmt.Errorf("%w: expected %d bytes of ROM data, got %d", ErrInvalidSize, Size, stat.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read ROM: %w", err)
	}

	return Parse(data, opts)
}

// Parse builds a View over data. The View keeps references to data, which
// must not be modified afterwards.
func Parse(data []byte, opts Options) (*View, error) {
	r, err := readROM(data, !opts.SkipChecksum)
	if err != nil {
		return nil, err
	}

	v := &View{
		rom:      r,
		data:     data,
		Files:    make([]File, len(r.DMAData)),
		Scenes:   make([]Scene, len(r.InternalSceneTable)),
		Messages: make([]Message, len(r.MessageTable)),
	}

	log := opts.logger()
	if err := v.load(log, opts.Actors); err != nil {
		return nil, err
	}

	log.Info("ROM loaded", "title", r.Title())

	return v, nil
}

func (v *View) load(log *slog.Logger, actors ActorCatalog) error {
	v.loadFiles(log)

	if err := v.loadMessages(log); err != nil {
		return err
	}

	if err := v.loadScenes(log); err != nil {
		return err
	}

	v.loadRoomData()
	v.describeActors(actors)
	v.buildIndexes()
	v.mapFileTypes(log)

	return nil
}

func (v *View) loadFiles(log *slog.Logger) {
	var size uint64
	for k, entry := range v.rom.DMAData {
		v.Files[k].load(v.data, entry)
		size += uint64(len(v.Files[k].data))
	}

	log.Info("loaded files", "count", len(v.Files), "size", humanize.IBytes(size))
}

func (v *View) loadMessages(log *slog.Logger) error {
	for k, entry := range v.rom.MessageTable {
		if err := v.Messages[k].load(v.data, entry); err != nil {
			return err
		}
	}

	log.Info("loaded messages", "count", len(v.Messages))

	return nil
}

func (v *View) loadScenes(log *slog.Logger) error {
	texts := make(map[uint16]string, len(v.Messages))
	for _, msg := range v.Messages {
		if _, ok := texts[msg.ID]; !ok {
			texts[msg.ID] = msg.String
		}
	}

	for k, entry := range v.rom.InternalSceneTable {
		scene := &v.Scenes[k]
		warn := func(cmd headerCommand, err error) {
			log.Debug("skipped scene header command",
				"offset", fmt.Sprintf("0x%08X", cmd.Offset),
				"scene", fmt.Sprintf("0x%08X", entry.VROMStart),
				"error", err,
			)
		}
		if err := scene.load(v.data, entry, warn); err != nil {
			return err
		}

		// Room names derive from the entrance text, resolve it first.
		if scene.Valid {
			scene.EntranceMessage = texts[entry.EntranceMessageID]
		}

		if err := scene.loadRooms(v.data); err != nil {
			return err
		}
	}

	log.Info("loaded scenes", "count", len(v.Scenes))

	return nil
}

// loadRoomData sets the raw room data (without headers), the room end comes
// from the file table when the room has an entry there.
func (v *View) loadRoomData() {
	ends := make(map[uint32]uint32, len(v.Files))
	for _, f := range v.Files {
		if f.Valid {
			ends[f.VROMStart] = f.VROMEnd
		}
	}

	for s := range v.Scenes {
		for r := range v.Scenes[s].Rooms {
			room := &v.Scenes[s].Rooms[r]
			end, ok := ends[room.VROMStart]
			if !ok {
				end = room.VROMEnd
			}
			room.loadData(v.data, end)
		}
	}
}

func (v *View) describeActors(actors ActorCatalog) {
	if len(actors) == 0 {
		return
	}

	for s := range v.Scenes {
		for r := range v.Scenes[s].Rooms {
			list := v.Scenes[s].Rooms[r].ActorList
			for a := range list {
				list[a].Description, _ = actors.Describe(list[a].ID)
			}
		}
	}
}

// buildIndexes keeps the first entry for each VROM start.
func (v *View) buildIndexes() {
	v.filesByStart = make(map[uint32]int, len(v.Files))
	for k, f := range v.Files {
		if _, ok := v.filesByStart[f.VROMStart]; !ok {
			v.filesByStart[f.VROMStart] = k
		}
	}

	v.scenesByStart = make(map[uint32]int, len(v.Scenes))
	v.roomsByStart = make(map[uint32][2]int)
	for s, scene := range v.Scenes {
		if !scene.Valid {
			continue
		}
		if _, ok := v.scenesByStart[scene.VROMStart]; !ok {
			v.scenesByStart[scene.VROMStart] = s
		}
		for r, room := range scene.Rooms {
			if room.VROMStart == 0 {
				continue
			}
			if _, ok := v.roomsByStart[room.VROMStart]; !ok {
				v.roomsByStart[room.VROMStart] = [2]int{s, r}
			}
		}
	}
}

func (v *View) mapFileTypes(log *slog.Logger) {
	mapped := 0

	for k := range v.Files {
		f := &v.Files[k]
		if !f.Valid {
			continue
		}

		if _, ok := v.scenesByStart[f.VROMStart]; ok {
			f.Type = FileTypeScene
			mapped++
		} else if _, ok := v.roomsByStart[f.VROMStart]; ok {
			f.Type = FileTypeRoom
			mapped++
		}
	}

	log.Debug("mapped file types", "count", mapped)
}

// ROM returns the fixed tables of the ROM.
func (v *View) ROM() *ROM {
	return v.rom
}

// Data returns the whole ROM image.
func (v *View) Data() []byte {
	return v.data
}

// FileByVROMStart returns the File starting at start.
func (v *View) FileByVROMStart(start uint32) (*File, error) {
	k, ok := v.filesByStart[start]
	if !ok {
		return nil, fmt.Errorf("file 0x%08X: %w", start, ErrNotFound)
	}
	return &v.Files[k], nil
}

// SceneByVROMStart returns the Scene starting at start.
func (v *View) SceneByVROMStart(start uint32) (*Scene, error) {
	k, ok := v.scenesByStart[start]
	if !ok {
		return nil, fmt.Errorf("scene 0x%08X: %w", start, ErrNotFound)
	}
	return &v.Scenes[k], nil
}

// RoomByVROMStart returns the Room starting at start.
func (v *View) RoomByVROMStart(start uint32) (*Room, error) {
	k, ok := v.roomsByStart[start]
	if !ok {
		return nil, fmt.Errorf("room 0x%08X: %w", start, ErrNotFound)
	}
	return &v.Scenes[k[0]].Rooms[k[1]], nil
}

// IsNotFound reports whether err comes from a failed lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
