// Package escolor converts between the fractional RGB(A) channel values used
// by Endless Sky data files and 24-bit hexadecimal HTML color codes.
//
// Channels are float64 fractions where 1.0 means full intensity (255).
// Inputs are not required to lie in [0,1]; clamping happens only while
// encoding to hex. The hex form carries no alpha.
package escolor

// Color is one fractional RGBA color value. All fields are plain fractions;
// nothing is clamped until the color is encoded.
type Color struct {
	R, G, B, A float64
}

// RGB returns a Color with the given channels and full alpha.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex encodes the color as "#RRGGBB". Alpha is dropped.
func (c Color) Hex() string {
	return FractionsToHex(c.R, c.G, c.B)
}

// clampByte truncates v*255 toward zero and clamps the result to [0,255].
// Truncation, not rounding, matches the output of the original data tooling
// and must be preserved. The clamp happens in float space: converting an
// out-of-range float64 to int is implementation-specific.
func clampByte(v float64) int {
	scaled := v * 255
	if scaled >= 255 {
		return 255
	}
	if !(scaled > 0) { // also catches NaN
		return 0
	}
	return int(scaled)
}

// FractionsToHex encodes three channel fractions as a "#RRGGBB" string.
// The result is always well-formed: each channel is truncated to a byte and
// clamped, so inputs far outside [0,1] still produce a valid code.
func FractionsToHex(r, g, b float64) string {
	return "#" + ByteToHex(clampByte(r)) + ByteToHex(clampByte(g)) + ByteToHex(clampByte(b))
}

// HexToFractions decodes a "#rrggbb" string into three channel fractions in
// [0,1], red-green-blue order. The string must start with '#' and contain at
// least 6 digits after it; otherwise nil is returned, which is the defined
// failure signal for malformed hex input. Characters past the sixth digit
// are ignored. Hex carries no alpha, so none is produced.
func HexToFractions(hex string) []float64 {
	if len(hex) < 7 || hex[0] != '#' {
		return nil
	}
	out := make([]float64, 0, 3)
	for i := 1; i < 7; i += 2 {
		out = append(out, float64(HexPairToByte(hex[i:i+2]))/255)
	}
	return out
}
