package rc5

// -----------------------------------------------------------------------------

// PKCS7Pad appends PKCS#7 padding to buf for the given block size and returns
// the padded buffer together with the pre-pad remainder of len(buf) modulo the
// block size. A buffer that is already block-aligned still receives one full
// block of padding; that is the property that makes unpadding unambiguous.
func PKCS7Pad(buf []byte, blockSize int) ([]byte, int) {
	rem := len(buf) % blockSize
	padCount := blockSize - rem
	if rem == 0 {
		padCount = blockSize
	}

	for n := 0; n < padCount; n++ {
		buf = append(buf, byte(padCount))
	}

	// Done
	return buf, rem
}

// PKCS7Unpad validates and strips PKCS#7 padding, returning the truncated
// buffer and the number of bytes removed.
//
// Every failure returns the same bare ErrPadding, whether the buffer was
// empty, misaligned, or carried a zero, oversized or inconsistent pad.
func PKCS7Unpad(buf []byte, blockSize int) ([]byte, int, error) {
	bufLen := len(buf)
	if bufLen == 0 || bufLen%blockSize != 0 {
		return nil, 0, ErrPadding
	}

	padLen := int(buf[bufLen-1])
	if padLen == 0 || padLen > blockSize {
		return nil, 0, ErrPadding
	}

	for ix := bufLen - padLen; ix < bufLen; ix++ {
		if buf[ix] != byte(padLen) {
			return nil, 0, ErrPadding
		}
	}

	// Done
	return buf[:bufLen-padLen], padLen, nil
}
