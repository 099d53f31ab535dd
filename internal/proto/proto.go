// From src/include/libpq/protocol.h and src/include/libpq/pqcomm.h – PostgreSQL 18.1
//
// Trimmed to the subset sqlward's wireclient actually speaks: the
// extended query protocol (Parse/Bind/Describe/Execute/Sync), password
// and SASL authentication, and startup/SSL negotiation. COPY, the
// simple-query and function-call sub-protocols, the standalone
// NotificationResponse channel, and the retired krb4/krb5/crypt auth
// methods are never sent or parsed by this client, so their codes are
// not declared here.

package proto

import (
	"fmt"
	"strconv"
)

// Constants from pqcomm.h
const (
	ProtocolVersion30 = (3 << 16) | 0 //lint:ignore SA4016 x
	NegotiateSSLCode  = (1234 << 16) | 5679
)

// RequestCode is a request codes sent by the frontend.
type RequestCode byte

// These are the request codes sent by the frontend.
const (
	Bind                = RequestCode('B')
	Describe            = RequestCode('D')
	Execute             = RequestCode('E')
	Parse               = RequestCode('P')
	Sync                = RequestCode('S')
	Terminate           = RequestCode('X')
	GSSResponse         = RequestCode('p')
	PasswordMessage     = RequestCode('p')
	SASLInitialResponse = RequestCode('p')
	SASLResponse        = RequestCode('p')
)

func (r RequestCode) String() string {
	s, ok := map[RequestCode]string{
		Bind:     "Bind",
		Describe: "Describe",
		Execute:  "Execute",
		Parse:    "Parse",
		Sync:     "Sync",
		Terminate: "Terminate",
		// These are all the same :-/
		//GSSResponse:  "GSSResponse",
		PasswordMessage: "PasswordMessage",
		//SASLInitialResponse: "SASLInitialResponse",
		//SASLResponse:        "SASLResponse",
	}[r]
	if !ok {
		s = "<unknown>"
	}
	c := string(r)
	if r <= 0x1f || r == 0x7f {
		c = fmt.Sprintf("0x%x", string(r))
	}
	return "(" + c + ") " + s
}

// ResponseCode is a response codes sent by the backend.
type ResponseCode byte

// These are the response codes sent by the backend.
const (
	ParseComplete         = ResponseCode('1')
	BindComplete          = ResponseCode('2')
	CommandComplete       = ResponseCode('C')
	DataRow               = ResponseCode('D')
	ErrorResponse         = ResponseCode('E')
	BackendKeyData        = ResponseCode('K')
	NoticeResponse        = ResponseCode('N')
	AuthenticationRequest = ResponseCode('R')
	ParameterStatus       = ResponseCode('S')
	RowDescription        = ResponseCode('T')
	ReadyForQuery         = ResponseCode('Z')
	NoData                = ResponseCode('n')
	ParameterDescription  = ResponseCode('t')
)

func (r ResponseCode) String() string {
	s, ok := map[ResponseCode]string{
		ParseComplete:         "ParseComplete",
		BindComplete:          "BindComplete",
		CommandComplete:       "CommandComplete",
		DataRow:               "DataRow",
		ErrorResponse:         "ErrorResponse",
		BackendKeyData:        "BackendKeyData",
		NoticeResponse:        "NoticeResponse",
		AuthenticationRequest: "AuthRequest",
		ParameterStatus:       "ParamStatus",
		RowDescription:        "RowDescription",
		ReadyForQuery:         "ReadyForQuery",
		NoData:                "NoData",
		ParameterDescription:  "ParamDescription",
	}[r]
	if !ok {
		s = "<unknown>"
	}
	c := string(r)
	if r <= 0x1f || r == 0x7f {
		c = fmt.Sprintf("0x%x", string(r))
	}
	return "(" + c + ") " + s
}

// AuthCode are authentication request codes sent by the backend.
type AuthCode int32

// These are the authentication request codes this client understands.
// The retired krb4/krb5/crypt methods (codes 1, 2, 4) are omitted: no
// supported backend offers them.
const (
	AuthReqOk       = AuthCode(0)  // User is authenticated
	AuthReqPassword = AuthCode(3)  // Password
	AuthReqMD5      = AuthCode(5)  // md5 password
	AuthReqGSS      = AuthCode(7)  // GSSAPI without wrap()
	AuthReqGSSCont  = AuthCode(8)  // Continue GSS exchanges
	AuthReqSSPI     = AuthCode(9)  // SSPI negotiate without wrap()
	AuthReqSASL     = AuthCode(10) // Begin SASL authentication
	AuthReqSASLCont = AuthCode(11) // Continue SASL authentication
	AuthReqSASLFin  = AuthCode(12) // Final SASL message
)

func (a AuthCode) String() string {
	s, ok := map[AuthCode]string{
		AuthReqOk:       "ok",
		AuthReqPassword: "password",
		AuthReqMD5:      "md5",
		AuthReqGSS:      "GSS",
		AuthReqGSSCont:  "GSSCont",
		AuthReqSSPI:     "SSPI",
		AuthReqSASL:     "SASL",
		AuthReqSASLCont: "SASLCont",
		AuthReqSASLFin:  "SASLFin",
	}[a]
	if !ok {
		s = "<unknown>"
	}
	return s + " (" + strconv.Itoa(int(a)) + ")"
}
