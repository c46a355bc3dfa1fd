package common

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// passwords from memory once a request has been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
