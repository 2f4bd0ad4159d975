package decimal64

import "strconv"

// MarshalJSON implements json.Marshaler. Decimals serialize as
// strings to avoid any float representation on the wire.
func (d Decimal[S]) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 34)
	buf = append(buf, '"')
	buf = d.Append(buf)
	buf = append(buf, '"')

	return buf, nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a string, an
// unsigned integer, or a floating point number. Non-string numbers
// are converted to their decimal string rendering and parsed like any
// other input, inheriting the parser's error behavior; in particular
// negative numbers fail with an invalid character error on '-'.
func (d *Decimal[S]) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return d.UnmarshalText(data[1 : len(data)-1])
	}

	// A numeric token. Plain integer and decimal tokens are already
	// in the parser's grammar; anything else (exponents, signs) is
	// re-rendered through float64 first.
	v, err := ParseBytes[S](data)
	if err == nil {
		*d = v

		return nil
	}

	f, ferr := strconv.ParseFloat(string(data), 64)
	if ferr != nil {
		return err
	}

	return d.UnmarshalText(strconv.AppendFloat(nil, f, 'f', -1, 64))
}
