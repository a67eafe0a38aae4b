package protocol

import "strings"

// Byte packs the status flags into the single-byte wire representation
// used as the final byte of a reply packet. Bit b is 1 iff the
// corresponding flag is set. Pure function, cannot fail.
func (s Status) Byte() byte {
	var b byte
	if s.LowBattery {
		b |= StatusMaskLowBattery
	}
	if s.OtherError {
		b |= StatusMaskOtherError
	}
	if s.PaperJam {
		b |= StatusMaskPaperJam
	}
	if s.PacketError {
		b |= StatusMaskPacketError
	}
	if s.UnprocessedData {
		b |= StatusMaskUnprocessedData
	}
	if s.PrintBufferFull {
		b |= StatusMaskPrintBufferFull
	}
	if s.PrinterBusy {
		b |= StatusMaskPrinterBusy
	}
	if s.ChecksumError {
		b |= StatusMaskChecksumError
	}
	return b
}

// ParseStatusByte decodes a status byte into its flags.
// Inverse of Status.Byte; total over all 256 byte values.
func ParseStatusByte(b byte) Status {
	return Status{
		LowBattery:      b&StatusMaskLowBattery != 0,
		OtherError:      b&StatusMaskOtherError != 0,
		PaperJam:        b&StatusMaskPaperJam != 0,
		PacketError:     b&StatusMaskPacketError != 0,
		UnprocessedData: b&StatusMaskUnprocessedData != 0,
		PrintBufferFull: b&StatusMaskPrintBufferFull != 0,
		PrinterBusy:     b&StatusMaskPrinterBusy != 0,
		ChecksumError:   b&StatusMaskChecksumError != 0,
	}
}

// String returns the set flags as a comma-separated list, highest bit
// first, or "ok" when no flag is set.
func (s Status) String() string {
	var flags []string
	if s.LowBattery {
		flags = append(flags, "low battery")
	}
	if s.OtherError {
		flags = append(flags, "other error")
	}
	if s.PaperJam {
		flags = append(flags, "paper jam")
	}
	if s.PacketError {
		flags = append(flags, "packet error")
	}
	if s.UnprocessedData {
		flags = append(flags, "unprocessed data")
	}
	if s.PrintBufferFull {
		flags = append(flags, "print buffer full")
	}
	if s.PrinterBusy {
		flags = append(flags, "printer busy")
	}
	if s.ChecksumError {
		flags = append(flags, "checksum error")
	}
	if len(flags) == 0 {
		return "ok"
	}
	return strings.Join(flags, ", ")
}
