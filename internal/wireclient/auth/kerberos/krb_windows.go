//go:build windows

// Package kerberos provides GSSAPI/SSPI authentication providers for
// wireclient.RegisterGSSProvider: this file is the Windows SSPI
// implementation, krb_unix.go the Kerberos (gokrb5) one for every other
// platform.
package kerberos

import (
	"github.com/alexbrainman/sspi"
	"github.com/alexbrainman/sspi/negotiate"

	"github.com/sqlward/sqlward/internal/wireclient"
)

func init() {
	wireclient.RegisterGSSProvider(func() (wireclient.Gss, error) {
		return NewGSS()
	})
}

// Gss implements wireclient.Gss using the current user's Windows
// credentials via SSPI negotiate (Kerberos or NTLM, whichever the domain
// controller accepts).
type Gss struct {
	creds *sspi.Credentials
	ctx   *negotiate.ClientContext
}

func NewGSS() (*Gss, error) {
	creds, err := negotiate.AcquireCurrentUserCredentials()
	if err != nil {
		return nil, err
	}
	return &Gss{creds: creds}, nil
}

func (g *Gss) GetInitToken(host string, service string) ([]byte, error) {
	spn := service + "/" + host
	ctx, token, err := negotiate.NewClientContext(g.creds, spn)
	if err != nil {
		return nil, err
	}
	g.ctx = ctx
	return token, nil
}

func (g *Gss) Continue(inToken []byte) (done bool, outToken []byte, err error) {
	return g.ctx.Update(inToken)
}
