// hex.go provides the low-level hex codec: one byte to two uppercase hex
// digits and back.

package escolor

// hexDigits is the fixed digit table used for encoding.
const hexDigits = "0123456789ABCDEF"

// ByteToHex encodes v as exactly two uppercase hexadecimal characters,
// high nibble first, zero-padded ("00" through "FF"). The caller must clamp
// v to [0,255] first; behavior outside that range is undefined.
func ByteToHex(v int) string {
	return string([]byte{hexDigits[v/16], hexDigits[v%16]})
}

// digitValue returns the numeric value of a single hex digit. Characters
// outside 0-9, A-F, a-f contribute 0 rather than failing — the decoder is
// deliberately tolerant, matching the data files this tool consumes. See
// DESIGN.md for the stricter alternative that was considered.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return 0
}

// HexPairToByte decodes a 2-character hex pair into an integer in [0,255].
// Case-insensitive. Non-hex characters contribute 0 to the result.
func HexPairToByte(pair string) int {
	if len(pair) < 2 {
		return 0
	}
	return digitValue(pair[0])*16 + digitValue(pair[1])
}
