package sqlward

import "testing"

func TestRemapTimeout(t *testing.T) {
	if v := remapTimeout(TimeoutMillis{Disabled: true}); v != nil {
		t.Fatalf("expected nil for a disabled timeout, got %v", *v)
	}
	if v := remapTimeout(TimeoutMillis{Millis: 0}); v == nil || *v != 1 {
		t.Fatalf("expected zero to remap to 1, got %v", v)
	}
	if v := remapTimeout(TimeoutMillis{Millis: 500}); v == nil || *v != 500 {
		t.Fatalf("expected 500 to pass through unchanged, got %v", v)
	}
}

func TestResolveSSLMode(t *testing.T) {
	if mode := resolveSSLMode(ClientConfiguration{}, SSLRequire); mode != SSLRequire {
		t.Fatalf("expected DSN-derived mode when no override is set, got %s", mode)
	}
	cfg := ClientConfiguration{SSL: &SSLPolicy{Mode: SSLDisable}}
	if mode := resolveSSLMode(cfg, SSLRequire); mode != SSLDisable {
		t.Fatalf("expected explicit SSL policy to override the DSN-derived mode, got %s", mode)
	}
}

func TestMapConfigurationAppliesSSLAndTimeouts(t *testing.T) {
	cfg := ClientConfiguration{
		SSL:                             &SSLPolicy{Mode: SSLRequire},
		StatementTimeout:                TimeoutMillis{Millis: 1000},
		IdleInTransactionSessionTimeout: TimeoutMillis{Disabled: true},
	}
	dsn := DSNFields{Host: "db.internal", Port: "5432", DatabaseName: "app", Username: "app", Password: "s3cret"}

	dc := mapConfiguration(cfg, dsn)
	if dc.TLS == nil {
		t.Fatalf("expected SSLRequire to produce a non-nil TLS config")
	}
	if dc.TLS.InsecureSkipVerify {
		t.Fatalf("expected SSLRequire to verify the server certificate, unlike SSLNoVerify")
	}

	noVerifyCfg := cfg
	noVerifyCfg.SSL = &SSLPolicy{Mode: SSLNoVerify}
	noVerifyDC := mapConfiguration(noVerifyCfg, dsn)
	if noVerifyDC.TLS == nil || !noVerifyDC.TLS.InsecureSkipVerify {
		t.Fatalf("expected SSLNoVerify to skip certificate verification, unlike SSLRequire")
	}

	if dc.StatementTimeoutMillis == nil || *dc.StatementTimeoutMillis != 1000 {
		t.Fatalf("expected statement timeout to be carried through, got %v", dc.StatementTimeoutMillis)
	}
	if dc.IdleInTransactionSessionTimeoutMillis != nil {
		t.Fatalf("expected a disabled idle timeout to stay nil, got %v", *dc.IdleInTransactionSessionTimeoutMillis)
	}

	wc := wireConfig(dc)
	if wc.Options != "-c statement_timeout=1000ms" {
		t.Fatalf("unexpected wire options: %q", wc.Options)
	}
}

func TestTLSConfigForModeRequireVerifiesNoVerifyDoesNot(t *testing.T) {
	require := tlsConfigForMode(SSLRequire, "db.internal")
	if require == nil {
		t.Fatalf("expected SSLRequire to produce a non-nil TLS config")
	}
	if require.InsecureSkipVerify {
		t.Fatalf("expected SSLRequire to verify the server certificate")
	}
	if require.ServerName != "db.internal" {
		t.Fatalf("expected SSLRequire to set ServerName, got %q", require.ServerName)
	}

	noVerify := tlsConfigForMode(SSLNoVerify, "db.internal")
	if noVerify == nil || !noVerify.InsecureSkipVerify {
		t.Fatalf("expected SSLNoVerify to skip certificate verification")
	}
}

func TestResolvePasswordPrefersDSNPassword(t *testing.T) {
	dsn := DSNFields{Password: "from-dsn"}
	if got := resolvePassword(dsn); got != "from-dsn" {
		t.Fatalf("expected the DSN password to win, got %q", got)
	}
}
