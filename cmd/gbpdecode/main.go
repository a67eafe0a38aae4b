// Command gbpdecode decodes Game Boy Printer protocol bytes from the
// command line.
//
// Examples:
//
//	gbpdecode -status 0x8A
//	gbpdecode -print 01030040
//	gbpdecode -command 0x0F
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gbpdev/go-gbprinter/protocol"
)

var Version = "1.0.0"

func main() {
	statusArg := flag.String("status", "", "status byte to decode, e.g. 0x8A")
	printArg := flag.String("print", "", "4-byte print instruction payload in hex, e.g. 01030040")
	commandArg := flag.String("command", "", "command byte to identify, e.g. 0x0F")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gbpdecode v%s\n", Version)
		os.Exit(0)
	}

	log := setupLogger(*verbose)

	if *statusArg == "" && *printArg == "" && *commandArg == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *statusArg != "" {
		if err := decodeStatus(*statusArg); err != nil {
			log.Fatalf("decode status: %v", err)
		}
	}

	if *printArg != "" {
		if err := decodePrintInstruction(*printArg); err != nil {
			log.Fatalf("decode print instruction: %v", err)
		}
	}

	if *commandArg != "" {
		if err := decodeCommand(*commandArg); err != nil {
			log.Fatalf("decode command: %v", err)
		}
	}
}

func setupLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func decodeStatus(arg string) error {
	b, err := parseByte(arg)
	if err != nil {
		return err
	}

	status := protocol.ParseStatusByte(b)
	fmt.Printf("status byte 0x%02X: %s\n", b, status)

	flags := []struct {
		name string
		bit  uint
	}{
		{"low battery", protocol.StatusBitLowBattery},
		{"other error", protocol.StatusBitOtherError},
		{"paper jam", protocol.StatusBitPaperJam},
		{"packet error", protocol.StatusBitPacketError},
		{"unprocessed data", protocol.StatusBitUnprocessedData},
		{"print buffer full", protocol.StatusBitPrintBufferFull},
		{"printer busy", protocol.StatusBitPrinterBusy},
		{"checksum error", protocol.StatusBitChecksumError},
	}
	for _, f := range flags {
		fmt.Printf("  bit %d  %-17s %v\n", f.bit, f.name, protocol.GetBit(b, f.bit))
	}
	return nil
}

func decodePrintInstruction(arg string) error {
	payload, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return fmt.Errorf("invalid hex payload %q: %w", arg, err)
	}

	instr, err := protocol.ParsePrintInstruction(payload)
	if err != nil {
		return err
	}

	fmt.Printf("print instruction % 02X:\n", payload)
	fmt.Printf("  sheets       %d", instr.Sheets)
	if instr.Sheets == 0 {
		fmt.Printf(" (feed only, no print)")
	}
	fmt.Println()
	fmt.Printf("  feeds before %d\n", instr.FeedsBefore)
	fmt.Printf("  feeds after  %d\n", instr.FeedsAfter)
	fmt.Printf("  palette      0x%02X\n", instr.Palette)
	fmt.Printf("  density      0x%02X", instr.Density)
	if instr.Density > protocol.MaxDensity {
		fmt.Printf(" (exceeds maximum 0x%02X)", protocol.MaxDensity)
	}
	fmt.Println()
	return nil
}

func decodeCommand(arg string) error {
	b, err := parseByte(arg)
	if err != nil {
		return err
	}

	fmt.Printf("command byte 0x%02X: %s", b, protocol.CommandName(b))
	if !protocol.ValidCommand(b) {
		fmt.Printf(" (not a valid printer command)")
	}
	fmt.Println()
	return nil
}

func parseByte(arg string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q: %w", arg, err)
	}
	return byte(v), nil
}
