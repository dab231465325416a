// Package romtest builds a small synthetic ROM image for tests. It has the
// retail header and checksums, a handful of files, one scene with one room
// holding one actor, and two messages.
package romtest

import (
	"encoding/binary"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/L-P/mme/internal/rom"
)

// Layout of the synthetic ROM.
const (
	Title     = "ZELDA MAJORA'S MASK"
	BuildTeam = "zelda@srd44"
	BuildDate = "2000-07-31 17:04:16"

	MessageDataStart = 0x00AD1000
	MessageDataEnd   = 0x00AD2000

	SceneStart = 0x02DC5000
	SceneEnd   = 0x02DC5100
	SceneName  = "Z2_TOWN"

	RoomStart     = 0x02E00000
	RoomEnd       = 0x02E00100
	RoomDataStart = RoomStart + 3*8

	UnusedStart = 0x02F00000

	EntranceMessageID = 0x0001
	EntranceText      = "Clock Town"
	HintMessageID     = 0x0002
	HintText          = "Press [A] to\ngo!"

	ActorID = 0x0010

	// ValidFiles is the number of DMA entries with data.
	ValidFiles = 4
)

const (
	buildOffset        = 0x0001A4D0
	dmaTableOffset     = 0x0001A500
	sceneTableOffset   = 0x00C5A1E0
	messageTableOffset = 0x00C5D0D8
)

// Bytes returns a fresh synthetic ROM image of rom.Size bytes.
func Bytes() []byte {
	b := make([]byte, rom.Size)
	be := binary.BigEndian

	copy(b[0:], rom.Magic[:])
	be.PutUint32(b[0x10:], rom.CRC1)
	be.PutUint32(b[0x14:], rom.CRC2)
	copy(b[0x20:0x34], padRight(Title, 20))
	copy(b[buildOffset:], BuildTeam+"\x0000-07-31 17:04:16")

	dma := func(i int, vs, ve, ps, pe uint32) {
		o := dmaTableOffset + i*16
		be.PutUint32(b[o:], vs)
		be.PutUint32(b[o+4:], ve)
		be.PutUint32(b[o+8:], ps)
		be.PutUint32(b[o+12:], pe)
	}
	dma(0, 0, 0x1000, 0, 0)
	dma(1, MessageDataStart, MessageDataEnd, MessageDataStart, 0)
	dma(2, SceneStart, SceneEnd, SceneStart, 0)
	dma(3, RoomStart, RoomEnd, RoomStart, 0)
	dma(4, UnusedStart, UnusedStart+0x10, 0xFFFFFFFF, 0xFFFFFFFF)

	// Scene table entry 0.
	be.PutUint32(b[sceneTableOffset:], SceneStart)
	be.PutUint32(b[sceneTableOffset+4:], SceneEnd)
	be.PutUint16(b[sceneTableOffset+8:], EntranceMessageID)
	b[sceneTableOffset+11] = 0x0A

	// Messages, the rest of the table points at the first one.
	putMessage(b, 0, EntranceMessageID, 0, []byte("Clock Town"))
	putMessage(b, 1, HintMessageID, 0x20, append(append([]byte("Press "), 0xB0), append([]byte(" to"), 0x11, 'g', 'o', '!')...))

	// Scene header: sound, rooms, skybox, an unknown command, end.
	header(b, SceneStart,
		[2]uint32{0x15020000, 0x00000A1C},
		[2]uint32{0x04010000, 0x02000040},
		[2]uint32{0x11000000, 0x01000000},
		[2]uint32{0x1D000000, 0x00000000},
	)
	be.PutUint32(b[SceneStart+0x40:], RoomStart)
	be.PutUint32(b[SceneStart+0x44:], RoomEnd)

	// Room header: actors, time, end.
	header(b, RoomStart,
		[2]uint32{0x01010000, 0x03000020},
		[2]uint32{0x10000000, 0xFFFF0300},
	)
	actor := b[RoomStart+0x20:]
	be.PutUint16(actor[0:], 0x4000|ActorID)
	be.PutUint16(actor[2:], uint16(0xFF9C)) // -100
	be.PutUint16(actor[4:], 50)
	be.PutUint16(actor[6:], 0x0200)
	be.PutUint16(actor[8:], 0xB4<<7|0x5)
	be.PutUint16(actor[10:], 0x100<<7|0x3)
	be.PutUint16(actor[12:], 0x007F)
	be.PutUint16(actor[14:], 0xFFFF)

	return b
}

func putMessage(b []byte, index int, id uint16, offset uint32, text []byte) {
	o := messageTableOffset + index*8
	binary.BigEndian.PutUint16(b[o:], id)
	binary.BigEndian.PutUint32(b[o+4:], 0x08000000|offset)

	m := b[MessageDataStart+offset:]
	m[2] = 0xFE
	binary.BigEndian.PutUint16(m[3:], 0xFFFF)
	binary.BigEndian.PutUint16(m[5:], 0xFFFF)
	binary.BigEndian.PutUint32(m[7:], 0xFFFFFFFF)
	n := copy(m[11:], text)
	m[11+n] = 0xBF
}

func header(b []byte, start uint32, cmds ...[2]uint32) {
	o := start
	for _, c := range cmds {
		binary.BigEndian.PutUint32(b[o:], c[0])
		binary.BigEndian.PutUint32(b[o+4:], c[1])
		o += 8
	}
	binary.BigEndian.PutUint32(b[o:], 0x14000000)
}

func padRight(s string, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	copy(out, s)
	return out
}

var (
	viewOnce sync.Once
	view     *rom.View
	viewErr  error
)

// View returns a View parsed from Bytes, shared by every caller in the test
// binary. Callers must not modify it.
func View(tb testing.TB) *rom.View {
	tb.Helper()

	viewOnce.Do(func() {
		view, viewErr = rom.Parse(Bytes(), rom.Options{
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			Actors: rom.ActorCatalog{
				ActorID: {ID: ActorID, FileName: "ovl_En_Test", Translation: "Test Actor"},
			},
		})
	})
	if viewErr != nil {
		tb.Fatalf("parse synthetic ROM: %v", viewErr)
	}

	return view
}
