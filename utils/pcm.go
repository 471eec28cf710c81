// SPDX-License-Identifier: EPL-2.0

package utils

// Lerp linearly interpolates between two PCM samples. frac is the
// fractional position between a and b (0 <= frac < 1).
func Lerp(a, b int16, frac float64) int16 {
	return int16(float64(a) + frac*(float64(b)-float64(a)))
}

// SaturateInt16 clamps a 32-bit mix accumulator sample to the int16
// range. Summed channels must saturate, never wrap.
func SaturateInt16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
