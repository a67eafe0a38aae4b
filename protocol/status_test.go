package protocol

import "testing"

func TestStatusByte(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected byte
	}{
		{
			name:     "all flags clear",
			status:   Status{},
			expected: 0x00,
		},
		{
			name: "all flags set",
			status: Status{
				LowBattery:      true,
				OtherError:      true,
				PaperJam:        true,
				PacketError:     true,
				UnprocessedData: true,
				PrintBufferFull: true,
				PrinterBusy:     true,
				ChecksumError:   true,
			},
			expected: 0xFF,
		},
		{
			name:     "low battery only",
			status:   Status{LowBattery: true},
			expected: 0x80,
		},
		{
			name:     "checksum error only",
			status:   Status{ChecksumError: true},
			expected: 0x01,
		},
		{
			name:     "busy with unprocessed data",
			status:   Status{PrinterBusy: true, UnprocessedData: true},
			expected: 0x0A,
		},
		{
			name:     "paper jam only",
			status:   Status{PaperJam: true},
			expected: 0x20,
		},
		{
			name:     "packet error with checksum error",
			status:   Status{PacketError: true, ChecksumError: true},
			expected: 0x11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Byte(); got != tt.expected {
				t.Errorf("Byte() = 0x%02X, want 0x%02X", got, tt.expected)
			}
		})
	}
}

func TestParseStatusByte(t *testing.T) {
	tests := []struct {
		name     string
		b        byte
		expected Status
	}{
		{
			name:     "zero byte",
			b:        0x00,
			expected: Status{},
		},
		{
			name: "all bits set",
			b:    0xFF,
			expected: Status{
				LowBattery:      true,
				OtherError:      true,
				PaperJam:        true,
				PacketError:     true,
				UnprocessedData: true,
				PrintBufferFull: true,
				PrinterBusy:     true,
				ChecksumError:   true,
			},
		},
		{
			name:     "busy with unprocessed data",
			b:        0x0A,
			expected: Status{PrinterBusy: true, UnprocessedData: true},
		},
		{
			name:     "other error only",
			b:        0x40,
			expected: Status{OtherError: true},
		},
		{
			name:     "print buffer full only",
			b:        0x04,
			expected: Status{PrintBufferFull: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatusByte(tt.b); got != tt.expected {
				t.Errorf("ParseStatusByte(0x%02X) = %+v, want %+v", tt.b, got, tt.expected)
			}
		})
	}
}

// Every possible status byte must survive a parse/pack round trip, and
// every flag combination must survive a pack/parse round trip.
func TestStatusRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		status := ParseStatusByte(byte(b))
		if got := status.Byte(); got != byte(b) {
			t.Errorf("round trip of 0x%02X = 0x%02X", b, got)
		}
		if again := ParseStatusByte(status.Byte()); again != status {
			t.Errorf("re-parse of 0x%02X = %+v, want %+v", b, again, status)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{
			name:     "healthy printer",
			status:   Status{},
			expected: "ok",
		},
		{
			name:     "single flag",
			status:   Status{PaperJam: true},
			expected: "paper jam",
		},
		{
			name:     "multiple flags highest bit first",
			status:   Status{PrinterBusy: true, UnprocessedData: true},
			expected: "unprocessed data, printer busy",
		},
		{
			name:     "error flags",
			status:   Status{LowBattery: true, ChecksumError: true},
			expected: "low battery, checksum error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
