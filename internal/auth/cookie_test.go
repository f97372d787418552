package auth

import "testing"

func TestSignAndVerify(t *testing.T) {
	signer := NewSigner("test-secret")

	signed := signer.Sign("session-token")
	value, err := signer.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if value != "session-token" {
		t.Errorf("value = %q, want session-token", value)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	signer := NewSigner("test-secret")

	tests := []struct {
		name  string
		value string
	}{
		{"No Separator", "justonepart"},
		{"Bad Signature", signer.Sign("token")[:len(signer.Sign("token"))-4] + "AAAA"},
		{"Wrong Key", NewSigner("other-secret").Sign("token")},
		{"Garbage Encoding", "!!!|???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := signer.Verify(tt.value); err == nil {
				t.Errorf("Verify(%q) succeeded, want error", tt.value)
			}
		})
	}
}
