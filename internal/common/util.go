package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Use it to clear passwords from memory once they are no longer
// needed. Safe to call with nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
