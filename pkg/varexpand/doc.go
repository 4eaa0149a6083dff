// Package varexpand expands %-directives in template strings.
//
// A template is literal text with directives introduced by '%'. Each
// directive resolves a key against a Table, a set of built-ins or a Funcs
// registry, optionally transforms the value, and appends it to the output.
//
// # Directive Syntax
//
//	%[-][0]width[.[0][-]width][modifiers]key
//
// A single number is a length: %3v takes the first three bytes of v. Two
// numbers are offset and length: %3.2v. Negative offsets count from the
// end, negative lengths drop bytes from the end. A leading 0 on the length
// pads with zeros instead of truncating: %05v.
//
// The key is either a single character (%u) or a braced long key
// (%{user}). Long keys may carry data for a function, %{env:HOME}, and hash
// options, %{sha1;rounds=10,salt=pepper:user}.
//
// # Modifiers
//
// Up to four modifier letters may precede the key:
//   - U, L: upper and lower case
//   - E: backslash-escape quotes and backslashes
//   - X: decimal number to hexadecimal
//   - R: reverse
//   - H: bucket hash; the length is the modulus, the offset the zero padding
//   - N: like H, using the first 64 bits of MD5
//   - M: MD5 hex digest
//   - D: domain to LDAP DN, "example.com" becomes "example,dc=com"
//   - T: trim trailing whitespace
//
// %% is a literal percent sign.
//
// # Built-in Keys
//
//   - %{hostname}, %{pid}, %{uid}, %{gid}
//   - %{env:NAME}: environment variable NAME, empty when unset
//   - %{<algorithm>[;options]:field}: cryptographic hash of field
//
// # Hashing
//
// The field of a hash directive is resolved like a long key, so
// %{sha1:user} hashes the value of %{user}. A field that names no variable
// is hashed literally, and a field containing '%' is expanded as a
// template. Options:
//   - rounds=N: apply the hash N times (default 1)
//   - salt=S: prefix every round with S, itself expanded
//   - truncate=BITS: keep the leading BITS bits, right-aligned
//   - format=hex|hexuc|base64
//
// # Status
//
// Expansion never stops early. Each directive yields StatusOK,
// StatusUnsupported (unknown key, rendered as UNSUPPORTED_VARIABLE_<key>,
// or a function that declined) or StatusFatal (syntax error or a failing
// function). The call returns the most severe status seen and, for
// StatusFatal, the error of the last fatal directive.
package varexpand
