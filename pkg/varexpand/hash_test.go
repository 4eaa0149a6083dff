package varexpand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/varexpand/pkg/hashmethod"
)

var hashTable = Table{
	{LongKey: "value", Value: "example"},
	{LongKey: "other-value", Value: "other-example"},
	{LongKey: "x", Value: "y"},
}

var hashFuncs = Funcs{
	"func1": func(data string, _ any) (string, Status, error) { return data, StatusOK, nil },
}

func TestExpandHashing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"md5: %M{value} %{md5:value}", "md5: 1a79a4d60de6718e8e5b326e338ae533 1a79a4d60de6718e8e5b326e338ae533"},
		{"sha1: %{sha1:value}", "sha1: c3499c2729730a7f807efb8676a92dcb6f8a3f8f"},
		{"sha1: %{sha1:func1:example}", "sha1: c3499c2729730a7f807efb8676a92dcb6f8a3f8f"},
		{"truncate: %{sha1;truncate=12:value}", "truncate: 0c34"},
		{"truncate: %{sha1;truncate=16:value}", "truncate: c349"},
		{"truncate: %{sha1;truncate=3:value}", "truncate: 06"},
		{"truncate: %{sha1;truncate=9999:value}", "truncate: c3499c2729730a7f807efb8676a92dcb6f8a3f8f"},
		{"rounds,salt: %{sha1;rounds=1000,salt=seawater:value}", "rounds,salt: b515c85884f6b82dc7588279f3643a73e55d2289"},
		{"salt,rounds: %{sha1;salt=seawater,rounds=1000:value}", "salt,rounds: b515c85884f6b82dc7588279f3643a73e55d2289"},
		{"rounds,salt,expand: %{sha1;rounds=1000,salt=%{other-value}:value} %{other-value}", "rounds,salt,expand: 49a598ee110af615e175f2e4511cc5d7ccff96ab other-example"},
		{"salt,func: %{sha1;rounds=1000,salt=%{func1:other-example}:value}", "salt,func: 49a598ee110af615e175f2e4511cc5d7ccff96ab"},
		{"format: %4.8{sha1:value}", "format: 9c272973"},
		{"base64: %{sha1;format=base64:value}", "base64: w0mcJylzCn+AfvuGdqkty2+KP48="},
		{"hexuc: %{sha1;format=hexuc:value}", "hexuc: C3499C2729730A7F807EFB8676A92DCB6F8A3F8F"},
		{"trunc64: %{sha1;truncate=12,format=base64:value}", "trunc64: DDQ="},
		{"trunc64: %{sha1;truncate=16,format=base64:value}", "trunc64: w0k="},
		{"pkcs5: %{pkcs5:value}", "pkcs5: 1104be59f70e5daaea565268c6cf861422506a0aded457c934cef831bf4dd6a2"},
		{"literal: %{sha256:abc}", "literal: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"nested: %{md5:%{sha1:value}}", "nested: 934114044f123bf688520ba548f1f1fc"},
		{"ignored: %{sha1;bogus,color=red:value}", "ignored: c3499c2729730a7f807efb8676a92dcb6f8a3f8f"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, st, err := newTestEngine().ExpandString(tt.in, hashTable, hashFuncs, nil)
			require.NoError(t, err)
			assert.Equal(t, StatusOK, st)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExpandSaltRecursion(t *testing.T) {
	e := newTestEngine()

	viaKey, st, err := e.ExpandString("%{sha1;salt=%{x}:value}", hashTable, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, st)

	literal, _, err := e.ExpandString("%{sha1;salt=y:value}", hashTable, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, literal, viaKey)
	assert.Equal(t, "8f2c72b0b2db9a97b51c9dbfa121325f48c2894e", viaKey)
}

func TestExpandHashTruncatePrefix(t *testing.T) {
	e := newTestEngine()

	full, _, err := e.ExpandString("%{sha1:value}", hashTable, nil, nil)
	require.NoError(t, err)
	t16, _, err := e.ExpandString("%{sha1;truncate=16:value}", hashTable, nil, nil)
	require.NoError(t, err)
	t12, _, err := e.ExpandString("%{sha1;truncate=12:value}", hashTable, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, full[:4], t16)
	assert.Equal(t, "0"+full[:3], t12)
}

func TestExpandHashErrors(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		status Status
		err    error
	}{
		{"%{sha1;rounds=abc:value}", "", StatusFatal, ErrHashOptions},
		{"%{sha1;rounds=0:value}", "", StatusFatal, ErrHashOptions},
		{"%{sha1;rounds=2000000:value}", "", StatusFatal, ErrHashOptions},
		{"%{sha1;truncate=-1:value}", "", StatusFatal, ErrHashOptions},
		{"%{sha1;format=octal:value}", "", StatusFatal, ErrHashOptions},
		{"%{sha1;salt=%{broken:value}", "", StatusFatal, ErrParse},
		{"%{sha1;salt=%{func5}:value}", "", StatusFatal, ErrFuncFailed},
		{"%{crc32;rounds=2:value}", "UNSUPPORTED_VARIABLE_crc32;rounds=2", StatusUnsupported, nil},
	}

	funcs := Funcs{
		"func5": func(string, any) (string, Status, error) { return "", StatusFatal, nil },
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, st, err := newTestEngine().ExpandString(tt.in, hashTable, funcs, nil)
			assert.Equal(t, tt.status, st)
			assert.Equal(t, tt.want, out)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandHashDegradedField(t *testing.T) {
	funcs := Funcs{
		"decline": func(string, any) (string, Status, error) { return "", StatusUnsupported, nil },
	}

	out, st, err := newTestEngine().ExpandString("[%{sha1:decline:x}]", nil, funcs, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusUnsupported, st)
	assert.Equal(t, "[]", out)

	// An unknown key in the salt degrades the result but still hashes.
	out, st, err = newTestEngine().ExpandString("%{sha1;salt=%{nope}:value}", hashTable, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusUnsupported, st)
	assert.Len(t, out, 40)
}

func TestExpandCustomHashRegistry(t *testing.T) {
	sha1m, ok := hashmethod.Default().Lookup("sha1")
	require.True(t, ok)
	sha1m.Name = "ssha"

	e := New(Config{Hashes: hashmethod.NewRegistry(sha1m)})

	out, st, err := e.ExpandString("%{ssha:value} %{md5:value}", hashTable, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusUnsupported, st)
	assert.Equal(t, "c3499c2729730a7f807efb8676a92dcb6f8a3f8f UNSUPPORTED_VARIABLE_md5", out)
}

func TestTruncateBits(t *testing.T) {
	digest := []byte{0xc3, 0x49, 0x9c}

	assert.Equal(t, []byte{0xc3}, truncateBits(digest, 8))
	assert.Equal(t, []byte{0x06}, truncateBits(digest, 3))
	assert.Equal(t, []byte{0x0c, 0x34}, truncateBits(digest, 12))
	assert.Equal(t, []byte{0x01, 0x86, 0x93}, truncateBits(digest, 17))
	assert.Equal(t, digest, truncateBits(digest, 24))
	assert.Equal(t, []byte{0xc3, 0x49, 0x9c}, digest, "input must not be modified")
}
