package storage

// Obfuscate applies the reversible XOR byte-transform to buf in place.
// It is self-inverse: applying it twice with the same key restores the
// original bytes. This is masking only, not encryption; it offers no
// confidentiality against anyone who can read the file. A zero key is a
// no-op, which is also how the transform is disabled.
func Obfuscate(buf []byte, key byte) {
	if key == 0 {
		return
	}
	for i := range buf {
		buf[i] ^= key
	}
}
