package rom

// File types assigned after scenes and rooms are loaded.
const (
	FileTypeScene = "scene"
	FileTypeRoom  = "room"
)

const dmaUnused = 0xFFFFFFFF

// DMAEntry is a single entry of the file table.
// binpacked, do not change struct size
type DMAEntry struct {
	// Virtual (or physical when uncompressed)
	VROMStart uint32
	VROMEnd   uint32

	// Physical (when compressed)
	PROMStart uint32
	PROMEnd   uint32
}

// A File is anything referenced by the file table.
type File struct {
	DMAEntry

	Name  string
	Type  string
	Valid bool

	data []byte
}

// Data returns the raw file contents. It is nil for files decoded from JSON.
func (f File) Data() []byte {
	return f.data
}

// Size returns the virtual size of the file, 0 for unused entries.
func (f File) Size() int {
	if !f.Valid {
		return 0
	}
	return int(f.VROMEnd - f.VROMStart)
}

// load fills the file from its table entry. Unused and empty entries are kept
// with Valid false so table indexes stay stable.
func (f *File) load(data []byte, entry DMAEntry) {
	f.DMAEntry = entry
	f.Name = FileName(entry.VROMStart)

	if entry.PROMStart == dmaUnused || entry.PROMEnd == dmaUnused || entry.VROMEnd <= entry.VROMStart {
		return
	}

	// As we work on a decompressed ROM PROMStart should equal VROMStart, but
	// read from the advertised physical offset regardless.
	start := int(entry.PROMStart)
	end := start + int(entry.VROMEnd-entry.VROMStart)
	if end > len(data) {
		return
	}

	f.data = data[start:end:end]
	f.Valid = true
}
