package ranges

import (
	"fmt"
)

func readDigits(buf []byte, pos int) ([]byte, int, error) {
	var s []byte
	for pos < len(buf) && buf[pos] >= 48 && buf[pos] <= 57 {
		s = append(s, buf[pos])
		pos++
	}
	if len(s) == 0 {
		return s, pos, fmt.Errorf("unexpected end of input at position %d", pos)
	}
	return s, pos, nil
}

func readInteger(buf []byte, pos int) ([]byte, int, error) {
	var s []byte
	if pos < len(buf) && buf[pos] == '-' {
		s = append(s, '-')
		pos++
	}
	digs, pos, err := readDigits(buf, pos)
	if err != nil {
		return nil, pos, err
	}
	return append(s, digs...), pos, nil
}

func readFloat(buf []byte, pos int) ([]byte, int, error) {
	s, pos, err := readInteger(buf, pos)
	if err != nil {
		return nil, pos, err
	}

	if pos < len(buf) && buf[pos] == '.' {
		var digs []byte

		s = append(s, '.')
		pos++

		digs, pos, err = readDigits(buf, pos)
		if err != nil {
			return nil, pos, err
		}
		s = append(s, digs...)
	}

	return s, pos, nil
}

func readSeparator(buf []byte, pos int) (int, error) {
	if pos >= len(buf) {
		return pos, fmt.Errorf("unexpected end of input at position %d", pos)
	}
	if buf[pos] != ',' {
		return pos, fmt.Errorf("unexpected character '%c' at position %d", buf[pos], pos)
	}
	return pos + 1, nil
}

func readRangeBound(buf []byte, pos int, incl, excl byte) (bool, int, error) {
	if pos >= len(buf) {
		return false, 0, fmt.Errorf("unexpected end of input at position %d", pos)
	}
	switch buf[pos] {
	case incl:
		return true, pos + 1, nil
	case excl:
		return false, pos + 1, nil
	default:
		return false, pos, fmt.Errorf("unexpected character '%c' at position %d", buf[pos], pos)
	}
}

func readRange(buf []byte) (minIncl bool, maxIncl bool, min []byte, max []byte, err error) {
	var pos int
	minIncl, pos, err = readRangeBound(buf, pos, '[', '(')
	if err != nil {
		return
	}
	min, pos, err = readFloat(buf, pos)
	if err != nil {
		return
	}
	pos, err = readSeparator(buf, pos)
	if err != nil {
		return
	}
	max, pos, err = readFloat(buf, pos)
	if err != nil {
		return
	}
	maxIncl, pos, err = readRangeBound(buf, pos, ']', ')')
	if err != nil {
		return
	}
	return
}

// readDiscreteRange reads an integer range in PostgreSQL's canonical
// "[lower,upper)" form and returns its two bounds.
func readDiscreteRange(buf []byte) ([]byte, []byte, error) {
	lowerIncl, upperIncl, lower, upper, err := readRange(buf)
	if err != nil {
		return nil, nil, err
	}
	if !lowerIncl || upperIncl {
		return nil, nil, fmt.Errorf("range %q is not in canonical [lower,upper) form", buf)
	}
	return lower, upper, nil
}

// readDiscreteTimeRange reads a date range such as "[2000-01-01,2017-05-09)"
// and returns its two bounds; an unbounded side comes back empty.
func readDiscreteTimeRange(buf []byte) ([]byte, []byte, error) {
	n := len(buf)
	if n < 3 || (buf[0] != '[' && buf[0] != '(') || buf[n-1] != ')' {
		return nil, nil, fmt.Errorf("unexpected date range format %q", buf)
	}
	for i := 1; i < n-1; i++ {
		if buf[i] == ',' {
			return buf[1:i], buf[i+1 : n-1], nil
		}
	}
	return nil, nil, fmt.Errorf("missing separator in date range %q", buf)
}
