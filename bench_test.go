package decimal64

import "testing"

func BenchmarkParseU3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := Parse[U3]("123.456")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseU8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := Parse[U8]("123.456")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	d, err := Parse[U8]("123.456")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}

func BenchmarkPut(b *testing.B) {
	d, err := Parse[U8]("123.456")
	if err != nil {
		b.Fatal(err)
	}

	var buf [32]byte

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Put(buf[:])
	}
}

func BenchmarkMul(b *testing.B) {
	one, err := Parse[U8]("0.2")
	if err != nil {
		b.Fatal(err)
	}
	two, err := Parse[U8]("50000")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = one.Mul(two)
	}
}

func BenchmarkCheckedMul(b *testing.B) {
	one, err := Parse[U8]("0.2")
	if err != nil {
		b.Fatal(err)
	}
	two, err := Parse[U8]("50000")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := one.CheckedMul(two); !ok {
			b.Fatal("overflow")
		}
	}
}
