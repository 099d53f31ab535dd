package netaddr

import "testing"

func TestCidrParser(t *testing.T) {
	v, err := CidrParser("192.168.1.0/24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := v.(Cidr)
	if !c.Valid || c.Cidr.String() != "192.168.1.0/24" {
		t.Fatalf("unexpected decode: %+v", c)
	}
}

func TestInetParser(t *testing.T) {
	v, err := InetParser("10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i := v.(Inet)
	if !i.Valid || i.Inet.String() != "10.0.0.1" {
		t.Fatalf("unexpected decode: %+v", i)
	}
}

func TestMacaddrParser(t *testing.T) {
	v, err := MacaddrParser("08:00:2b:01:02:03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(Macaddr)
	if !m.Valid || m.Macaddr.String() != "08:00:2b:01:02:03" {
		t.Fatalf("unexpected decode: %+v", m)
	}
}
