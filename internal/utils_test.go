package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseRef(t *testing.T) {
	testCases := map[string]Ref{
		`EMAIL_ADDRESS`:  {Name: "EMAIL_ADDRESS"},
		` POST_CODE_JP `: {Name: "POST_CODE_JP"},
		`A`:              {Name: "A"},
		`IP_ADDRESS_V4`:  {Name: "IP_ADDRESS_V4"},
		`0`:              {Code: 0, IsCode: true},
		`12`:             {Code: 12, IsCode: true},
		"\t033\n":        {Code: 33, IsCode: true},
	}

	// invalid cases
	errCases := []string{
		``,
		`   `,
		`-1`,
		`+1`,
		`1.5`,
		`email_address`,
		`_EMAIL`,
		`EMAIL__ADDRESS`,
		`EMAIL_`,
		`1ABC`,
		`EMAIL ADDRESS`,
		`99999999999999999999`,
	}

	for _, s := range errCases {
		act, err := ParseRef(s)
		if !assert.True(t, errors.Is(err, ErrInvalidRef), "input=%q", s) {
			t.Logf("result=%v", act)
		}
	}

	for s, exp := range testCases {
		act, err := ParseRef(s)
		if !assert.Nil(t, err) {
			t.Logf("input=%q result=%v", s, act)
			t.FailNow()
		}
		assert.Equal(t, exp, act)
	}
}

func TestToInt(t *testing.T) {
	type code int32
	type ucode uint8
	testCases := map[interface{}]int{
		7:          7,
		int8(-3):   -3,
		int16(300): 300,
		int32(7):   7,
		int64(7):   7,
		uint(7):    7,
		uint8(7):   7,
		uint16(7):  7,
		uint32(7):  7,
		uint64(7):  7,
		"42":       42,
		" 42 ":     42,
		"-5":       -5,
		code(9):    9,
		ucode(9):   9,
	}
	for in, exp := range testCases {
		act, err := ToInt(in)
		if assert.NoError(t, err, "input=%v (%T)", in, in) {
			assert.Equal(t, exp, act)
		}
	}

	errCases := []interface{}{
		nil,
		1.0,
		"abc",
		"",
		uint64(math.MaxUint64),
		int64(math.MaxInt64),
		int64(math.MinInt64),
		struct{}{},
	}
	for _, in := range errCases {
		_, err := ToInt(in)
		assert.True(t, errors.Is(err, ErrInvalidRef), "input=%v (%T)", in, in)
	}
}

func TestIsName(t *testing.T) {
	assert.True(t, IsName("EMAIL_ADDRESS"))
	assert.True(t, IsName("X9"))
	assert.False(t, IsName("Email"))
	assert.False(t, IsName(""))
	assert.False(t, IsName("A-B"))
}
