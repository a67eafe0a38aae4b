package protocol

import "fmt"

// Bytes encodes the print instruction into its 4-byte wire payload.
//
// Payload layout:
//
//	[SHEETS][FEEDS_BEFORE<<4 | FEEDS_AFTER][PALETTE][DENSITY]
//
// Returns an error if a feed count exceeds its nibble or the density
// exceeds MaxDensity.
func (p PrintInstruction) Bytes() ([]byte, error) {
	if p.FeedsBefore > MaxFeeds {
		return nil, fmt.Errorf("feeds before printing must be at most %d, got %d", MaxFeeds, p.FeedsBefore)
	}
	if p.FeedsAfter > MaxFeeds {
		return nil, fmt.Errorf("feeds after printing must be at most %d, got %d", MaxFeeds, p.FeedsAfter)
	}
	if p.Density > MaxDensity {
		return nil, fmt.Errorf("density 0x%02X exceeds maximum 0x%02X", p.Density, MaxDensity)
	}

	payload := make([]byte, PrintInstructionSize)
	payload[IndexSheets] = p.Sheets
	payload[IndexLinefeed] = p.FeedsBefore<<4 | p.FeedsAfter
	payload[IndexPalette] = p.Palette
	payload[IndexDensity] = p.Density

	return payload, nil
}

// ParsePrintInstruction decodes the 4-byte parameter block of a PRINT
// command. The payload must be exactly PrintInstructionSize bytes.
func ParsePrintInstruction(data []byte) (*PrintInstruction, error) {
	if len(data) != PrintInstructionSize {
		return nil, fmt.Errorf("invalid print instruction length: got %d bytes, expected %d", len(data), PrintInstructionSize)
	}

	// Field values are taken as-is. Judging an out-of-range density from a
	// capture is left to the caller.
	instr := &PrintInstruction{
		Sheets:      data[IndexSheets],
		FeedsBefore: data[IndexLinefeed] >> 4,
		FeedsAfter:  data[IndexLinefeed] & 0x0F,
		Palette:     data[IndexPalette],
		Density:     data[IndexDensity],
	}

	return instr, nil
}
