package hexpp

// addressDigits picks the zero-padded width of row addresses from the
// largest address the dump can print.
func addressDigits(maxAddr uint64) int {
	switch {
	case maxAddr <= 0xFFFF:
		return 4
	case maxAddr <= 0xFFFFFF:
		return 6
	case maxAddr <= 0xFFFFFFFF:
		return 8
	default:
		return 16
	}
}

// maxAddress estimates the largest printed address from the rendered length.
// It can overshoot or undershoot the last row start when the final row is
// short; appendAddress widens the rare address that does not fit.
func maxAddress(n, width, offset int) uint64 {
	if n <= width {
		return uint64(n) + uint64(offset)
	}
	return uint64(n-width) + uint64(offset)
}

// appendAddress writes addr as lowercase hex padded to at least digits
// characters, followed by the address separator. Wider addresses are never
// cut.
func appendAddress(dst []byte, addr uint64, digits int) []byte {
	for digits < 16 && addr>>(uint(digits)*4) != 0 {
		digits++
	}
	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigitsLower[(addr>>uint(shift))&0xF])
	}
	return append(dst, addressSeparator...)
}
