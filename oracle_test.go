package decimal64_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal64"
)

// These tests cross check the fixed scale arithmetic against an
// arbitrary precision oracle. The oracle results are truncated to
// scale 8, matching the library's truncating semantics.

func TestParseOracle(t *testing.T) {
	inputs := []string{
		"0",
		"0.5",
		"123.45",
		"123.45678901",
		"184467440737.09551615",
		"0.00000001",
		"50000",
	}

	for i, input := range inputs {
		t.Run(fmt.Sprintf("[%d]%s", i, input), func(t *testing.T) {
			d, err := decimal64.Parse[decimal64.U8](input)
			require.NoError(t, err)

			oracle, err := decimal.NewFromString(input)
			require.NoError(t, err)

			require.Equal(t, oracle.StringFixed(8), d.String())
		})
	}
}

func TestArithmeticOracle(t *testing.T) {
	type TC struct {
		a  string
		b  string
		op string
	}

	tcs := []TC{
		{a: "0.2", b: "50000", op: "mul"},
		{a: "123.45678901", b: "0.00000009", op: "mul"},
		{a: "1.0563", b: "1.0543", op: "mul"},
		{a: "0.2", b: "50000", op: "add"},
		{a: "123.45678901", b: "0.00000009", op: "add"},
		{a: "50000", b: "0.2", op: "sub"},
		{a: "123.45678910", b: "0.00000009", op: "sub"},
		{a: "1", b: "3", op: "div"},
		{a: "50000", b: "0.2", op: "div"},
		{a: "123.45678901", b: "2", op: "div"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s %s %s", i, tc.a, tc.op, tc.b), func(t *testing.T) {
			t.Logf("case: %s", spew.Sdump(tc))

			a, err := decimal64.Parse[decimal64.U8](tc.a)
			require.NoError(t, err)
			b, err := decimal64.Parse[decimal64.U8](tc.b)
			require.NoError(t, err)

			oa, err := decimal.NewFromString(tc.a)
			require.NoError(t, err)
			ob, err := decimal.NewFromString(tc.b)
			require.NoError(t, err)

			var got decimal64.Decimal[decimal64.U8]
			var want decimal.Decimal

			switch tc.op {
			case "mul":
				got = a.Mul(b)
				want = oa.Mul(ob)
			case "add":
				got = a.Add(b)
				want = oa.Add(ob)
			case "sub":
				got = a.Sub(b)
				want = oa.Sub(ob)
			case "div":
				got = a.Div(b)
				want = oa.DivRound(ob, 16)
			}

			require.Equal(t, want.Truncate(8).StringFixed(8), got.String())
		})
	}
}
