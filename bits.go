package cyan

// fastHash is a fast but non-cryptographic hash function, the same one
// the Rust implementation this module was specified from borrows from
// the JDK's String#hashCode: Σ 31^(|s|-i+1)·s[i].
//
// It is used only to bucket strings in the interner's probe table, never
// for anything security sensitive.
func fastHash(s []byte) uint64 {
	var hash uint64
	n := len(s)
	for i := 0; i < n; i++ {
		hash += pow31(uint64(n-i+1)) * uint64(s[i])
	}
	return hash
}

func pow31(exp uint64) uint64 {
	result := uint64(1)
	base := uint64(31)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
