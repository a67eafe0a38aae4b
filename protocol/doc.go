// Package protocol defines the Game Boy Printer serial link protocol vocabulary.
//
// This package provides the wire-format constants, the printer status bitfield,
// and the print instruction parameter block defined in the Game Boy Programming
// Manual Version 1.0 (DMG-06-4216-001-A).
//
// # Protocol Overview
//
// Communication with the printer is packet based. Every packet the Game Boy
// sends begins with a fixed two-byte sync word, and every reply from the
// printer ends with its device ID and a status byte:
//
//	| BYTE POS    | 0    | 1    | 2   | 3           | 4     | 5     | 6+X     | ...      | last-1   | last   |
//	|-------------|------|------|-----|-------------|-------|-------|---------|----------|----------|--------|
//	| DESCRIPTION | SYNC_WORD   | CMD | COMPRESSION | LEN_L | LEN_H | PAYLOAD | CHECKSUM | DEVICEID | STATUS |
//	| GB SENDS    | 0x88 | 0x33 | cmd | 0x00/0x01   | low   | high  | ...     | sum      | 0x00     | 0x00   |
//	| PRINTER     | 0x00 | 0x00 | ... | 0x00        | 0x00  | 0x00  | 0x00    | 0x00     | 0x81     | status |
//
// This package supplies the vocabulary only. Packet framing, checksum
// computation, link timing and transport are the responsibility of the
// consumer (a printer emulator or a capture decoder).
//
// # Status Byte
//
// The printer reports its state as a single byte bitfield. Use the Status
// type to build or inspect it:
//
//	status := protocol.Status{PrinterBusy: true, UnprocessedData: true}
//	b := status.Byte() // 0x0A
//
//	decoded := protocol.ParseStatusByte(0x0A)
//	fmt.Println(decoded) // "unprocessed data, printer busy"
//
// # Print Instruction
//
// A PRINT command (CmdPrint) carries a 4-byte parameter block controlling
// sheet count, paper feed, palette and burn density:
//
//	instr := protocol.PrintInstruction{
//	    Sheets:     1,
//	    FeedsAfter: 3,
//	    Density:    0x40,
//	}
//	payload, err := instr.Bytes()
//
// Use ParsePrintInstruction to decode the block from a captured packet.
//
// # Commands
//
// Command bytes are enumerated as Cmd* constants. The printer only accepts
// the five enumerated values; use ValidCommand to reject anything else and
// CommandName for diagnostics:
//
//	if !protocol.ValidCommand(b) {
//	    return fmt.Errorf("rejecting %s", protocol.CommandName(b))
//	}
//
// # Reference
//
// GameBoy PROGRAMMING MANUAL Version 1.0, DMG-06-4216-001-A,
// released 11/09/1999. Chapter 4 covers the printer, section 4.2 the
// print instruction packet.
package protocol
