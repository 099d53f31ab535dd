package wireclient

import "github.com/sqlward/sqlward/internal/proto"

// NewGSSFunc creates a GSS authentication provider, for use with
// RegisterGSSProvider.
type NewGSSFunc func() (Gss, error)

var newGss NewGSSFunc

// RegisterGSSProvider registers the function used to create a GSS
// authentication provider (Kerberos on Unix via auth/kerberos/krb_unix.go,
// SSPI on Windows via auth/kerberos/krb_windows.go). Both register
// themselves from an init() in their respective build-tagged files.
func RegisterGSSProvider(f NewGSSFunc) {
	newGss = f
}

// Gss provides GSSAPI/SSPI authentication (e.g. Kerberos). Only the
// negotiation providers in package auth/kerberos need to implement this.
type Gss interface {
	GetInitToken(host string, service string) ([]byte, error)
	Continue(inToken []byte) (done bool, outToken []byte, err error)
}

func (cn *Conn) gssAuth() {
	if newGss == nil {
		errorf("server requested GSSAPI/SSPI authentication but no provider is registered")
	}
	g, err := newGss()
	if err != nil {
		errorf("error constructing GSS provider: %v", err)
	}

	token, err := g.GetInitToken(cn.cfg.Host, "postgres")
	if err != nil {
		errorf("error obtaining initial GSS token: %v", err)
	}
	w := cn.writeBuf(byte(proto.GSSResponse))
	w.bytes(token)
	cn.send(w)

	for {
		t, r := cn.recv()
		if proto.ResponseCode(t) != proto.AuthenticationRequest {
			errorf("unexpected GSS response: %q", t)
		}
		switch code := proto.AuthCode(r.int32()); code {
		case proto.AuthReqOk:
			return
		case proto.AuthReqGSSCont:
			done, out, err := g.Continue(r.next(len(*r)))
			if err != nil {
				errorf("error continuing GSS negotiation: %v", err)
			}
			if len(out) > 0 {
				w := cn.writeBuf(byte(proto.GSSResponse))
				w.bytes(out)
				cn.send(w)
			}
			if done {
				continue
			}
		default:
			errorf("unexpected GSS authentication response: %d", code)
		}
	}
}
