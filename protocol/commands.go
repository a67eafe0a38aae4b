package protocol

import "fmt"

// ValidCommand reports whether b is one of the five command bytes the
// printer accepts. The protocol defines no other values; consumers should
// reject packets whose command byte fails this check.
func ValidCommand(b byte) bool {
	switch b {
	case CmdInit, CmdPrint, CmdData, CmdBreak, CmdInquiry:
		return true
	default:
		return false
	}
}

// CommandName returns a human-readable name for a command byte.
func CommandName(b byte) string {
	switch b {
	case CmdInit:
		return "INIT"
	case CmdPrint:
		return "PRINT"
	case CmdData:
		return "DATA"
	case CmdBreak:
		return "BREAK"
	case CmdInquiry:
		return "INQUIRY"
	default:
		return fmt.Sprintf("unknown command 0x%02X", b)
	}
}
