package protocol

// Sync word per Game Boy Programming Manual DMG-06-4216-001-A.
// Every packet sent by the Game Boy starts with these two bytes,
// most significant byte first on the wire.
const (
	// SyncWord0 is the first sync byte (0x88)
	SyncWord0 = 0x88

	// SyncWord1 is the second sync byte (0x33)
	SyncWord1 = 0x33

	// SyncWord is the combined 16-bit sync word (0x8833)
	SyncWord = 0x8833
)

// Command codes per DMG-06-4216-001-A chapter 4.
// Typical sequence: INIT -> DATA -> ... -> DATA -> PRINT -> INQUIRY.
const (
	// CmdInit resets the printer and clears its image buffer (~10 byte packet)
	CmdInit = 0x01

	// CmdPrint starts printing; carries a 4-byte print instruction payload
	CmdPrint = 0x02

	// CmdData transfers image data (typically 10 byte header + 640 byte band)
	CmdData = 0x04

	// CmdBreak forcibly stops an in-progress print
	CmdBreak = 0x08

	// CmdInquiry requests the current printer status without side effects
	CmdInquiry = 0x0F
)

// Compression flag values for the packet header.
const (
	// CompressionDisabled indicates a raw payload (0x00)
	CompressionDisabled = 0x00

	// CompressionEnabled indicates a run-length encoded payload (0x01)
	CompressionEnabled = 0x01
)

// DeviceID is the byte the printer places before the status byte in every
// reply. The MSB is always 1 and the lower 7 bits are the device number;
// the Game Boy Pocket Printer is device 1, giving 0x81.
const DeviceID = 0x81

// Print instruction payload layout per DMG-06-4216-001-A section 4.2.
// The PRINT command carries exactly PrintInstructionSize data bytes.
const (
	// PrintInstructionSize is the fixed payload size in bytes
	PrintInstructionSize = 4

	// IndexSheets is the sheet count byte: 0-255, 0 means feed only
	IndexSheets = 0

	// IndexLinefeed holds feeds before printing in the high nibble and
	// feeds after printing in the low nibble
	IndexLinefeed = 1

	// IndexPalette is the palette byte, 2 bits per entry from the high bit
	IndexPalette = 2

	// IndexDensity is the burn density byte, 0x00-0x7F
	IndexDensity = 3
)

// Status byte bit positions, MSB to LSB.
const (
	// StatusBitLowBattery reports battery too low
	StatusBitLowBattery = 7

	// StatusBitOtherError reports an unspecified error
	StatusBitOtherError = 6

	// StatusBitPaperJam reports a paper jam
	StatusBitPaperJam = 5

	// StatusBitPacketError reports a malformed packet
	StatusBitPacketError = 4

	// StatusBitUnprocessedData reports buffered data not yet printed
	StatusBitUnprocessedData = 3

	// StatusBitPrintBufferFull reports a full image buffer
	StatusBitPrintBufferFull = 2

	// StatusBitPrinterBusy reports a print in progress
	StatusBitPrinterBusy = 1

	// StatusBitChecksumError reports a checksum mismatch
	StatusBitChecksumError = 0
)

// Status byte masks derived from the bit positions above.
const (
	StatusMaskLowBattery      = 1 << StatusBitLowBattery
	StatusMaskOtherError      = 1 << StatusBitOtherError
	StatusMaskPaperJam        = 1 << StatusBitPaperJam
	StatusMaskPacketError     = 1 << StatusBitPacketError
	StatusMaskUnprocessedData = 1 << StatusBitUnprocessedData
	StatusMaskPrintBufferFull = 1 << StatusBitPrintBufferFull
	StatusMaskPrinterBusy     = 1 << StatusBitPrinterBusy
	StatusMaskChecksumError   = 1 << StatusBitChecksumError
)

// MaxDensity is the largest valid print density value.
// Defaults per the manual are 0x40 and above.
const MaxDensity = 0x7F

// MaxFeeds is the largest valid linefeed nibble value, applying to both
// the feeds-before and feeds-after fields.
const MaxFeeds = 0x0F
