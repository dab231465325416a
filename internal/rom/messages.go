package rom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	messageHeaderSize = 11
	messageEndMarker  = 0xBF
	messageOffsetMask = 0x00FFFFFF
	maxMessageLen     = 4096
)

// MessageEntry is a single entry in the message table.
// Sources:
//   - https://wiki.cloudmodding.com/mm/Text_Format#Message_Entry_Table
//
// binpacked, do not change struct size
type MessageEntry struct {
	ID     uint16
	_      uint16 // 0x0000
	Offset uint32 // prefixed with 0x08
}

// MessageHeader is the standard header of every text message.
type MessageHeader struct {
	TextBoxType       byte
	TextBoxPosition   byte
	Icon              byte
	NextMessageNumber uint16
	RupeeCost         uint16
	_                 uint32 // 0xFFFFFFFF
}

// Message is text than can appear in an ingame textbox.
type Message struct {
	MessageEntry
	MessageHeader
	VROMStart uint32

	String string
}

func (m *Message) load(data []byte, entry MessageEntry) error {
	m.MessageEntry = entry
	m.VROMStart = messageDataStart + entry.Offset&messageOffsetMask

	start := int(m.VROMStart)
	if start+messageHeaderSize > len(data) {
		return fmt.Errorf("%w: message 0x%04X at 0x%08X", ErrOutOfBounds, entry.ID, m.VROMStart)
	}

	h := data[start:]
	m.MessageHeader = MessageHeader{
		TextBoxType:       h[0],
		TextBoxPosition:   h[1],
		Icon:              h[2],
		NextMessageNumber: binary.BigEndian.Uint16(h[3:]),
		RupeeCost:         binary.BigEndian.Uint16(h[5:]),
	}

	text := data[start+messageHeaderSize : min(start+messageHeaderSize+maxMessageLen, len(data))]
	if end := bytes.IndexByte(text, messageEndMarker); end >= 0 {
		text = text[:end+1]
	}
	m.String = sanitizeString(text)

	return nil
}

var buttonGlyphs = map[byte]string{
	0xB0: "[A]",
	0xB1: "[B]",
	0xB2: "[C]",
	0xB3: "[L]",
	0xB4: "[R]",
	0xB5: "[Z]",
	0xB6: "[C Up]",
	0xB7: "[C Down]",
	0xB8: "[C Left]",
	0xB9: "[C Right]",
	0xBA: "▼",
	0xBB: "[Control Stick]",
}

// sanitizeString turns encoded message text into printable text, dropping
// control codes and their arguments.
func sanitizeString(src []byte) string {
	var sb strings.Builder
	skip := 0

	for _, b := range src {
		if skip > 0 {
			skip--
			continue
		}

		switch {
		case b >= 0x1B && b <= 0x1F:
			skip = 2
		case b == 0x0A:
			skip = 1
		case b == messageEndMarker:
			return sb.String()
		case b >= 0x10 && b <= 0x13:
			sb.WriteByte('\n')
		case buttonGlyphs[b] != "":
			sb.WriteString(buttonGlyphs[b])
		case b >= 0x20 && b <= 0x7E:
			sb.WriteByte(b)
		}
	}

	return sb.String()
}
