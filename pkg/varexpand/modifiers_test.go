package varexpand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandModifiers(t *testing.T) {
	table := Table{
		{Key: 'v', Value: "value"},
		{Key: 'u', LongKey: "user", Value: "Alice.Smith"},
		{Key: 'd', LongKey: "domain", Value: "mail.example.com"},
		{Key: 'n', Value: "255"},
		{Key: 'q', Value: `it's "quoted" \ here`},
		{Key: 's', Value: "padded \t\n"},
		{Key: 'g', Value: "straße"},
		{Key: 'l', Value: "averyveryverylongusername"},
	}

	tests := []struct {
		in   string
		want string
	}{
		{"%Uu", "ALICE.SMITH"},
		{"%Lu", "alice.smith"},
		{"%U{user}", "ALICE.SMITH"},
		{"%Ug", "STRASSE"},
		{"%Eq", `it\'s \"quoted\" \\ here`},
		{"%Xn", "ff"},
		{"%Xv", "0"},
		{"%Ru", "htimS.ecilA"},
		{"%Rg", "eßarts"},
		{"%Dd", "mail,dc=example,dc=com"},
		{"dc=%D{domain}", "dc=mail,dc=example,dc=com"},
		{"[%Ts]", "[padded]"},
		{"%Mv", "2063c1608d6e0baf80249c42e2be5804"},
		{"%Hv", "7c83b5"},
		{"%256Hv", "b5"},
		{"%4.256Hv", "00b5"},
		{"%Hl", "59366c5"},
		{"%Nv", "8d6e0baf"},
		{"%256Nv", "af"},
		{"%-50Hv", "1f"},
		{"%LRu", "htims.ecila"},
		{"%3Uu", "ALI"},
		{"%-5.3Lu", "smi"},
		{"%MURv", "4085EB2E24C94208FAB0E6D8061C3602"},
		{"%ULLLLv", "unsupported_variable_lv"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, _, err := newTestEngine().ExpandString(tt.in, table, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExpandModifierLimit(t *testing.T) {
	table := Table{{Key: 'L', Value: "Cap"}}

	tests := []struct {
		in   string
		want string
	}{
		// Four letters are modifiers; the fifth is the key.
		{"%ULLLL", "cap"},
		{"%ULLLLv", "capv"},
		{"%ULLLLL", "capL"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, _, _ := newTestEngine().ExpandString(tt.in, table, nil, nil)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestStrHash(t *testing.T) {
	assert.Equal(t, uint32(0), strHash(""))
	assert.Equal(t, uint32(0x7c83b5), strHash("value"))
	assert.Equal(t, uint32(0x59366c5), strHash("averyveryverylongusername"))
}

func TestApplyRange(t *testing.T) {
	tests := []struct {
		s       string
		offset  int
		width   int
		zeroPad bool
		want    string
	}{
		{"value1234", 0, 0, false, "value1234"},
		{"value1234", 3, 2, false, "ue"},
		{"value1234", -4, -1, false, "123"},
		{"value1234", 9, 0, false, ""},
		{"value1234", -100, 3, false, "val"},
		{"42", 0, 5, true, "00042"},
		{"42", 0, -5, true, "42"},
		{"", 0, -1, false, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, applyRange(tt.s, tt.offset, tt.width, tt.zeroPad),
			"applyRange(%q, %d, %d, %v)", tt.s, tt.offset, tt.width, tt.zeroPad)
	}
}
