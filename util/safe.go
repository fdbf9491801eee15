package util

// -----------------------------------------------------------------------------

// SafeZeroMem zeros the given memory. Used to wipe key material before it is
// released.
func SafeZeroMem(v []byte) {
	vLen := len(v)
	if vLen > 0 {
		v[0] = 0
		for ofs := 1; ofs < vLen; ofs *= 2 {
			copy(v[ofs:], v[:ofs])
		}
	}
}
