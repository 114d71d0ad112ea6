package interfaces

// SignatureVerifier is the external proof-of-ownership primitive. It reports
// whether signature proves that the holder of address signed message. A non-nil
// error means the primitive itself failed; callers treat that the same as a
// false result.
type SignatureVerifier interface {
	Verify(message []byte, address string, signature string) (bool, error)
}
