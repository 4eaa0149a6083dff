// Package id generates the random identifiers behind the CLI's %{ulid} and
// %{random:N} functions.
//
// ULIDs are 26 Crockford base32 characters: 48 bits of millisecond time
// followed by 80 random bits, so they sort by creation time. IDs generated
// in the same millisecond stay unique through a counter mixed into the
// random part. All randomness comes from crypto/rand.
package id
