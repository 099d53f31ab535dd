//go:build !windows

package kerberos

import (
	"fmt"
	"os"

	"github.com/jcmturner/gokrb5/v8/client"
	"github.com/jcmturner/gokrb5/v8/config"
	"github.com/jcmturner/gokrb5/v8/credentials"
	"github.com/jcmturner/gokrb5/v8/messages"
	"github.com/jcmturner/gokrb5/v8/types"

	"github.com/sqlward/sqlward/internal/wireclient"
)

func init() {
	wireclient.RegisterGSSProvider(func() (wireclient.Gss, error) {
		return NewGSS()
	})
}

// krb5OID is the GSS-API mechanism OID for Kerberos V5
// (1.2.840.113554.1.2.2), used to frame the init token the way a real
// GSS-API implementation would.
var krb5OID = []byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x12, 0x01, 0x02, 0x02}

// Gss implements wireclient.Gss using a ticket obtained from the user's
// credential cache (as populated by kinit) against a system krb5.conf.
type Gss struct {
	cl *client.Client
}

func NewGSS() (*Gss, error) {
	cfgPath := os.Getenv("KRB5_CONFIG")
	if cfgPath == "" {
		cfgPath = "/etc/krb5.conf"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading krb5 config: %w", err)
	}

	ccPath := os.Getenv("KRB5CCNAME")
	if ccPath == "" {
		ccPath = fmt.Sprintf("/tmp/krb5cc_%d", os.Getuid())
	}
	cc, err := credentials.LoadCCache(ccPath)
	if err != nil {
		return nil, fmt.Errorf("loading credential cache %s: %w", ccPath, err)
	}

	cl, err := client.NewFromCCache(cc, cfg)
	if err != nil {
		return nil, fmt.Errorf("building kerberos client: %w", err)
	}
	return &Gss{cl: cl}, nil
}

func (g *Gss) GetInitToken(host string, service string) ([]byte, error) {
	spn := service + "/" + host
	tkt, sessionKey, err := g.cl.GetServiceTicket(spn)
	if err != nil {
		return nil, fmt.Errorf("obtaining service ticket for %s: %w", spn, err)
	}

	auth, err := messages.NewAuthenticator(g.cl.Credentials.Realm(), g.cl.Credentials.CName())
	if err != nil {
		return nil, fmt.Errorf("building authenticator: %w", err)
	}
	apReq, err := messages.NewAPReq(tkt, sessionKey, auth)
	if err != nil {
		return nil, fmt.Errorf("building AP-REQ: %w", err)
	}
	inner, err := apReq.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshaling AP-REQ: %w", err)
	}

	return wrapGSSToken(inner), nil
}

// Continue is a no-op: a plain (non-mutual) Kerberos GSS exchange
// completes after the single init token above, so the server should
// never send a GSS continuation for it.
func (g *Gss) Continue(inToken []byte) (done bool, outToken []byte, err error) {
	return true, nil, nil
}

// wrapGSSToken wraps a raw Kerberos AP-REQ in the generic GSS-API
// token framing (RFC 2743 sec. 3.1): an application-constructed tag,
// a DER length, the mechanism OID, then the inner token bytes.
func wrapGSSToken(inner []byte) []byte {
	body := append(append([]byte{}, krb5OID...), inner...)
	out := append([]byte{0x60}, appendDERLength(nil, len(body))...)
	return append(out, body...)
}

func appendDERLength(dst []byte, n int) []byte {
	if n < 0x80 {
		return append(dst, byte(n))
	}
	var lb []byte
	for n > 0 {
		lb = append([]byte{byte(n & 0xff)}, lb...)
		n >>= 8
	}
	return append(append(dst, 0x80|byte(len(lb))), lb...)
}
