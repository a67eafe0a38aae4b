package protocol

// Status is the printer status bitfield as a value type.
// Each flag maps to exactly one bit of the status byte the printer places
// at the end of a reply packet. Flags are independent; any combination is
// representable. The zero value reports a healthy, idle printer.
type Status struct {
	// LowBattery is set when the battery is too low (bit 7)
	LowBattery bool

	// OtherError is set on an unspecified error (bit 6)
	OtherError bool

	// PaperJam is set on a paper jam (bit 5)
	PaperJam bool

	// PacketError is set when a malformed packet was received (bit 4)
	PacketError bool

	// UnprocessedData is set when data is buffered but not yet printed (bit 3)
	UnprocessedData bool

	// PrintBufferFull is set when the image buffer is full (bit 2)
	PrintBufferFull bool

	// PrinterBusy is set while a print is in progress (bit 1)
	PrinterBusy bool

	// ChecksumError is set on a checksum mismatch (bit 0)
	ChecksumError bool
}

// PrintInstruction is the decoded 4-byte parameter block carried by a
// PRINT command. See section 4.2 of DMG-06-4216-001-A.
type PrintInstruction struct {
	// Sheets is the number of sheets to print (0-255).
	// 0 means line feed only, no printing. One feed is 2.64 mm.
	Sheets byte

	// FeedsBefore is the number of line feeds before printing (0-15),
	// stored in the high nibble of the linefeed byte
	FeedsBefore byte

	// FeedsAfter is the number of line feeds after printing (0-15),
	// stored in the low nibble of the linefeed byte
	FeedsAfter byte

	// Palette selects gray shades, 2 bits per entry from the high bit.
	// Default is 0x00.
	Palette byte

	// Density is the burn density (0x00-MaxDensity).
	// Default values are 0x40 and greater.
	Density byte
}
