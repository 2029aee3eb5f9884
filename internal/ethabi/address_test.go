package ethabi

import (
	"strings"
	"testing"
)

// Checksum vectors below are the published EIP-55 examples plus the
// first account of the standard local development mnemonic.

func TestChecksumAddress_KnownVectors(t *testing.T) {
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
		"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	}

	for _, want := range vectors {
		got, err := ChecksumAddress(strings.ToLower(want))
		if err != nil {
			t.Fatalf("ChecksumAddress(%q) error: %v", want, err)
		}
		if got != want {
			t.Fatalf("ChecksumAddress = %s, want %s", got, want)
		}
	}
}

func TestChecksumAddress_IdempotentOnChecksummed(t *testing.T) {
	in := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	got, err := ChecksumAddress(in)
	if err != nil {
		t.Fatalf("ChecksumAddress error: %v", err)
	}
	if got != in {
		t.Fatalf("ChecksumAddress = %s, want unchanged %s", got, in)
	}
}

func TestChecksumAddress_Malformed(t *testing.T) {
	for name, address := range map[string]string{
		"too short": "0x1234",
		"not hex":   "0x" + strings.Repeat("zz", 20),
	} {
		if _, err := ChecksumAddress(address); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"checksummed", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", true},
		{"lowercase", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", true},
		{"missing prefix", "f39fd6e51aad88f6f4ce6ab8827279cfffb92266", false},
		{"too short", "0x1234", false},
		{"too long", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb9226600", false},
		{"not hex", "0xg39fd6e51aad88f6f4ce6ab8827279cfffb92266", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		if got := IsValidAddress(tt.address); got != tt.want {
			t.Fatalf("%s: IsValidAddress(%q) = %v, want %v", tt.name, tt.address, got, tt.want)
		}
	}
}

func TestVerifyChecksum(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid checksum", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", true},
		{"broken checksum", "0xF39fd6e51aad88F6F4ce6aB8827279cffFb92266", false},
		{"all lowercase accepted", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", true},
		{"all uppercase accepted", "0x" + strings.ToUpper("f39fd6e51aad88f6f4ce6ab8827279cfffb92266"), true},
	}

	for _, tt := range tests {
		got, err := VerifyChecksum(tt.address)
		if err != nil {
			t.Fatalf("%s: VerifyChecksum error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%s: VerifyChecksum(%q) = %v, want %v", tt.name, tt.address, got, tt.want)
		}
	}
}
