package wireclient

// SCRAM-SHA-256 SASL authentication (PostgreSQL v10+). Comments refer to
// terms from RFC 5802; see RFC 3454/4013 for the stringprep/SASLprep
// normalization this delegates to.

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlward/sqlward/internal/proto"
	"github.com/xdg-go/stringprep"
	"golang.org/x/crypto/pbkdf2"
)

func (cn *Conn) doScramAuth(password string) {
	s := scramCtx{cn: cn, password: password}
	s.step1() // C: n,,n=,r=nonce
	s.step2() // S: r=nonce,s=salt,i=iters
	s.step3() // C: c=biws,r=nonce,p=proof
	s.step4() // S: v=verifier
}

type scramCtx struct {
	cn       *Conn
	password string
	cnonce   string
	sfm      string
	fnonce   string
	salt     []byte
	iters    int
	sp       []byte
	am       []byte
}

func (s *scramCtx) step1() {
	s.cnonce = makeNonce()
	msg := []byte("n,,n=,r=" + s.cnonce)

	w := s.cn.writeBuf(byte(proto.SASLInitialResponse))
	w.string("SCRAM-SHA-256")
	w.int32(len(msg))
	w.bytes(msg)
	s.cn.send(w)
}

func (s *scramCtx) step2() {
	t, r := s.cn.recv()
	if proto.ResponseCode(t) != proto.AuthenticationRequest {
		errorf("unexpected password response: %q", t)
	}
	if proto.AuthCode(r.int32()) != proto.AuthReqSASLCont {
		errorf("unexpected authentication response: %q", t)
	}

	s.sfm = string(*r)
	parts := strings.Split(s.sfm, ",")
	if len(parts) != 3 || !strings.HasPrefix(parts[0], "r=") ||
		!strings.HasPrefix(parts[1], "s=") || !strings.HasPrefix(parts[2], "i=") {
		errorf("invalid SCRAM server-first-message from server")
	}

	s.fnonce = parts[0][2:]
	if len(s.fnonce) == len(s.cnonce) || !strings.HasPrefix(s.fnonce, s.cnonce) {
		errorf("invalid SCRAM nonce from server")
	}

	var err error
	s.salt, err = base64.StdEncoding.DecodeString(parts[1][2:])
	if err != nil {
		errorf("invalid SCRAM salt from server: %v", err)
	}

	s.iters, err = strconv.Atoi(parts[2][2:])
	if err != nil {
		errorf("invalid SCRAM iteration count from server: %v", err)
	}
	if s.iters <= 0 {
		errorf("invalid SCRAM iteration count (%d) from server", s.iters)
	}
}

func (s *scramCtx) step3() {
	cfmwo := "c=biws,r=" + s.fnonce

	np, err := stringprep.SASLprep.Prepare(s.password)
	if err != nil {
		np = s.password
	}

	s.sp = pbkdf2.Key([]byte(np), s.salt, s.iters, 32, sha256.New)
	s.am = []byte("n=,r=" + s.cnonce + "," + s.sfm + "," + cfmwo)

	cp := computeClientProof(s.sp, s.am)
	cfm := []byte(fmt.Sprintf("%s,p=%s", cfmwo, cp))

	w := s.cn.writeBuf(byte(proto.SASLResponse))
	w.bytes(cfm)
	s.cn.send(w)
}

func (s *scramCtx) step4() {
	t, r := s.cn.recv()
	if proto.ResponseCode(t) != proto.AuthenticationRequest {
		errorf("unexpected password response: %q", t)
	}
	if v := proto.AuthCode(r.int32()); v != proto.AuthReqSASLFin {
		errorf("unexpected authentication response: %v", v)
	}

	sfm := string(*r)
	if !strings.HasPrefix(sfm, "v=") {
		errorf("invalid SCRAM server-final-message from server")
	}

	reqd := computeServerSignature(s.sp, s.am)
	if subtle.ConstantTimeCompare([]byte(reqd), []byte(sfm[2:])) != 1 {
		errorf("invalid SCRAM ServerSignature from server")
	}
}

func makeNonce() string {
	data := make([]byte, 24)
	if _, err := rand.Read(data); err != nil {
		errorf("failed to read random data: %v", err)
	}
	return base64.StdEncoding.EncodeToString(data)
}

func computeClientProof(saltedPassword []byte, authMessage []byte) string {
	ck := computeHMAC(saltedPassword, []byte("Client Key"))
	sk := sha256.Sum256(ck)
	cs := computeHMAC(sk[:], authMessage)
	proof := make([]byte, len(cs))
	for i := 0; i < len(cs); i++ {
		proof[i] = ck[i] ^ cs[i]
	}
	return base64.StdEncoding.EncodeToString(proof)
}

func computeServerSignature(saltedPassword []byte, authMessage []byte) string {
	sk := computeHMAC(saltedPassword, []byte("Server Key"))
	ss := computeHMAC(sk, authMessage)
	return base64.StdEncoding.EncodeToString(ss)
}

func computeHMAC(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
