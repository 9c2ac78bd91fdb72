package format

import "strings"

type (
	// Flag selects the optional integrity metadata written by the encoder and
	// expected by the decoder. Flags are not recorded in the stream, so both sides
	// must be configured identically.
	Flag uint8

	ChecksumStatus  uint8
	CompressionType uint8
)

const (
	FlagNoHeader          Flag = 1 << 0 // FlagNoHeader suppresses the byte-order-mark header.
	FlagSumCheckOnRemain  Flag = 1 << 1 // FlagSumCheckOnRemain appends a checksum trailer over the tail group, when one exists.
	FlagDoSumCheckForcely Flag = 1 << 2 // FlagDoSumCheckForcely appends a checksum trailer over the whole input, always.

	ChecksumAbsent ChecksumStatus = 0x0 // ChecksumAbsent means no trailer was written or expected.
	ChecksumPassed ChecksumStatus = 0x1 // ChecksumPassed means the trailer matched.
	ChecksumFailed ChecksumStatus = 0x2 // ChecksumFailed means the trailer did not match.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Forced reports whether the trailer covers the whole stream.
func (f Flag) Forced() bool {
	return f&FlagDoSumCheckForcely != 0
}

// OnRemain reports whether the trailer covers only the tail group.
// Forced mode takes precedence when both bits are set.
func (f Flag) OnRemain() bool {
	return f&FlagSumCheckOnRemain != 0 && !f.Forced()
}

// Checksummed reports whether any checksum mode is enabled.
func (f Flag) Checksummed() bool {
	return f&(FlagSumCheckOnRemain|FlagDoSumCheckForcely) != 0
}

// TrailerExpected reports whether a stream whose final group holds tailLen
// bytes (0 for none) carries a checksum trailer.
func (f Flag) TrailerExpected(tailLen int) bool {
	if f.Forced() {
		return true
	}

	return f.OnRemain() && tailLen > 0
}

func (f Flag) String() string {
	if f == 0 {
		return "None"
	}

	var parts []string
	if f&FlagNoHeader != 0 {
		parts = append(parts, "NoHeader")
	}
	if f&FlagSumCheckOnRemain != 0 {
		parts = append(parts, "SumCheckOnRemain")
	}
	if f&FlagDoSumCheckForcely != 0 {
		parts = append(parts, "DoSumCheckForcely")
	}
	if len(parts) == 0 {
		return "Unknown"
	}

	return strings.Join(parts, "|")
}

func (s ChecksumStatus) String() string {
	switch s {
	case ChecksumAbsent:
		return "Absent"
	case ChecksumPassed:
		return "Passed"
	case ChecksumFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive algorithm name to its CompressionType.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
