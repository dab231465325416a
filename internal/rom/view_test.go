package rom_test

import (
	"encoding/binary"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L-P/mme/internal/rom"
	"github.com/L-P/mme/internal/rom/romtest"
)

func quietOptions() rom.Options {
	return rom.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestParse_Header(t *testing.T) {
	v := romtest.View(t)

	r := v.ROM()
	assert.Equal(t, romtest.Title, r.Title())
	assert.Equal(t, uint32(rom.CRC1), r.CRC1)

	team, date := r.ParseBuild()
	assert.Equal(t, romtest.BuildTeam, team)
	assert.Equal(t, romtest.BuildDate, date)
	assert.Len(t, v.Data(), rom.Size)
}

func TestParse_Files(t *testing.T) {
	v := romtest.View(t)

	valid := 0
	for _, f := range v.Files {
		if f.Valid {
			valid++
		}
	}
	assert.Equal(t, romtest.ValidFiles, valid)

	scene, err := v.FileByVROMStart(romtest.SceneStart)
	require.NoError(t, err)
	assert.Equal(t, romtest.SceneName, scene.Name)
	assert.Equal(t, rom.FileTypeScene, scene.Type)
	assert.Equal(t, romtest.SceneEnd-romtest.SceneStart, scene.Size())
	assert.Len(t, scene.Data(), scene.Size())

	room, err := v.FileByVROMStart(romtest.RoomStart)
	require.NoError(t, err)
	assert.Equal(t, rom.FileTypeRoom, room.Type)

	unused, err := v.FileByVROMStart(romtest.UnusedStart)
	require.NoError(t, err)
	assert.False(t, unused.Valid)
	assert.Zero(t, unused.Size())
	assert.Nil(t, unused.Data())

	_, err = v.FileByVROMStart(0x01234567)
	require.ErrorIs(t, err, rom.ErrNotFound)
	assert.True(t, rom.IsNotFound(err))
}

func TestParse_ScenesAndRooms(t *testing.T) {
	v := romtest.View(t)

	scene, err := v.SceneByVROMStart(romtest.SceneStart)
	require.NoError(t, err)
	assert.True(t, scene.Valid)
	assert.Equal(t, romtest.EntranceText, scene.EntranceMessage)
	assert.Equal(t, uint32(romtest.SceneStart+5*8), scene.DataStartOffset)
	assert.Equal(t, byte(0x1C), scene.SoundBackgroundSequence)
	assert.Equal(t, byte(0x0A), scene.SoundNightSFX)
	assert.Equal(t, byte(1), scene.SkyboxNumber)
	assert.Equal(t, uint8(0x0A), scene.SceneConfiguration)
	require.Len(t, scene.Rooms, 1)

	room, err := v.RoomByVROMStart(romtest.RoomStart)
	require.NoError(t, err)
	assert.Equal(t, romtest.EntranceText, room.SceneName)
	assert.Equal(t, uint32(romtest.SceneStart), room.SceneVROMStart)
	assert.Equal(t, uint32(romtest.RoomDataStart), room.DataStartOffset)
	assert.Len(t, room.Data(), romtest.RoomEnd-romtest.RoomDataStart)
	assert.Equal(t, uint16(0xFFFF), room.TimeStart)

	require.Len(t, room.ActorList, 1)
	actor := room.ActorList[0]
	assert.Equal(t, uint16(romtest.ActorID), actor.ID)
	assert.True(t, actor.NoYRotation)
	assert.Equal(t, int16(-100), actor.Position.X)
	require.NotNil(t, actor.Description)
	assert.Equal(t, "Test Actor", actor.Description.Translation)

	_, err = v.SceneByVROMStart(romtest.RoomStart)
	require.ErrorIs(t, err, rom.ErrNotFound)
	_, err = v.RoomByVROMStart(romtest.SceneStart)
	require.ErrorIs(t, err, rom.ErrNotFound)
}

func TestParse_Messages(t *testing.T) {
	v := romtest.View(t)

	require.Len(t, v.Messages, 4589)
	assert.Equal(t, uint16(romtest.EntranceMessageID), v.Messages[0].ID)
	assert.Equal(t, romtest.EntranceText, v.Messages[0].String)
	assert.Equal(t, uint32(romtest.MessageDataStart), v.Messages[0].VROMStart)
	assert.Equal(t, byte(0xFE), v.Messages[0].Icon)

	assert.Equal(t, uint16(romtest.HintMessageID), v.Messages[1].ID)
	assert.Equal(t, romtest.HintText, v.Messages[1].String)
}

func TestParse_Rejects(t *testing.T) {
	t.Run("size", func(t *testing.T) {
		_, err := rom.Parse(make([]byte, 1024), quietOptions())
		require.ErrorIs(t, err, rom.ErrInvalidSize)
	})

	t.Run("byte swapped", func(t *testing.T) {
		data := romtest.Bytes()
		copy(data, []byte{0x37, 0x80, 0x40, 0x12})
		_, err := rom.Parse(data, quietOptions())
		require.ErrorIs(t, err, rom.ErrInvalidMagic)
	})

	t.Run("checksum", func(t *testing.T) {
		data := romtest.Bytes()
		binary.BigEndian.PutUint32(data[0x10:], 0xDEADBEEF)
		_, err := rom.Parse(data, quietOptions())
		require.ErrorIs(t, err, rom.ErrChecksum)

		opts := quietOptions()
		opts.SkipChecksum = true
		_, err = rom.Parse(data, opts)
		require.NoError(t, err)
	})

	t.Run("room list out of bounds", func(t *testing.T) {
		data := romtest.Bytes()
		binary.BigEndian.PutUint32(data[romtest.SceneStart+0x40:], rom.Size-8)
		binary.BigEndian.PutUint32(data[romtest.SceneStart+0x44:], rom.Size+0x100)
		_, err := rom.Parse(data, quietOptions())
		require.ErrorIs(t, err, rom.ErrOutOfBounds)
	})
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.z64")
	require.NoError(t, os.WriteFile(short, []byte("nope"), 0o600))
	_, err := rom.Open(short, quietOptions())
	require.ErrorIs(t, err, rom.ErrInvalidSize)

	_, err = rom.Open(filepath.Join(dir, "missing.z64"), quietOptions())
	require.Error(t, err)

	full := filepath.Join(dir, "mm.z64")
	require.NoError(t, os.WriteFile(full, romtest.Bytes(), 0o600))
	v, err := rom.Open(full, quietOptions())
	require.NoError(t, err)
	assert.Len(t, v.Scenes, 113)
}

func TestLoadActorCatalog(t *testing.T) {
	catalog, err := rom.LoadActorCatalog(strings.NewReader(
		`[{"ID":16,"FileName":"ovl_En_Horse","Object":1,"Translation":"Epona","Identification":"En_Horse"}]`,
	))
	require.NoError(t, err)

	d, ok := catalog.Describe(16)
	require.True(t, ok)
	assert.Equal(t, "Epona", d.Translation)

	_, ok = catalog.Describe(17)
	assert.False(t, ok)

	_, err = rom.LoadActorCatalog(strings.NewReader("{"))
	require.Error(t, err)
}
