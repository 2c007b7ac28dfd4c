// Package credentials normalizes heterogeneous API credential inputs into
// one canonical Credentials value and delegates token and signature
// generation to pluggable generator strategies.
//
// Construction accepts three shapes: positional arguments with functional
// options (New), an object form (FromConfig or a plain map via Parse), and
// a pass-through for values that are already canonical (Parse on a
// *Credentials returns it unchanged). A private key reference given as a
// string is materialized at construction time: if a file exists at that
// path its contents become the key, otherwise the string itself is taken
// as literal key text.
//
// The two generator slots are lazily bound to the default implementations
// on first use and can be replaced at any time with SetJWTGenerator and
// SetSignatureGenerator. Credentials depends only on the small generator
// interfaces, never on a concrete strategy type.
package credentials
