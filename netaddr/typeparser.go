package netaddr

// CidrParser, InetParser, and MacaddrParser adapt each type's Scan
// method to the (raw string) -> (any, error) shape the type-parser
// registry expects, for registration as sqlward.TypeParsers named
// "cidr", "inet", and "macaddr" respectively.

func CidrParser(raw string) (any, error) {
	var c Cidr
	if err := c.Scan([]byte(raw)); err != nil {
		return nil, err
	}
	return c, nil
}

func InetParser(raw string) (any, error) {
	var i Inet
	if err := i.Scan([]byte(raw)); err != nil {
		return nil, err
	}
	return i, nil
}

func MacaddrParser(raw string) (any, error) {
	var m Macaddr
	if err := m.Scan([]byte(raw)); err != nil {
		return nil, err
	}
	return m, nil
}
