package identity

import "testing"

func TestIsValidAcceptsWellFormedCodes(t *testing.T) {
	v := NewEstonian()
	codes := []string{
		"35001012499",
		"35001062500",
		"35001095000",
		"35001079999",
		// first-stage remainder 10, check digit from second weighting
		"15001010090",
		"15001010225",
		// both remainders 10, check digit 0
		"15001010460",
		"15001011010",
	}
	for _, code := range codes {
		if !v.IsValid(code) {
			t.Fatalf("expected %s to be valid", code)
		}
	}
}

func TestIsValidRejectsBadChecksum(t *testing.T) {
	v := NewEstonian()
	// valid code with the check digit bumped
	if v.IsValid("35001012490") {
		t.Fatalf("expected checksum mismatch to be rejected")
	}
}

func TestIsValidRejectsMalformedCodes(t *testing.T) {
	v := NewEstonian()
	codes := []string{
		"",
		"3500101249",   // too short
		"350010124999", // too long
		"3500101249x",  // non-digit
		"05001012499",  // century digit 0
		"75001012499",  // century digit 7
		"35013012499",  // month 13
		"35002302499",  // February 30th
		"35000102499",  // month 0
	}
	for _, code := range codes {
		if v.IsValid(code) {
			t.Fatalf("expected %s to be rejected", code)
		}
	}
}

func TestIsValidLeapDay(t *testing.T) {
	v := NewEstonian()
	// 2000-02-29 exists; find the matching check digit by trying all.
	base := "50002290"
	accepted := false
	for serial := 0; serial < 10; serial++ {
		for check := 0; check < 10; check++ {
			code := base + string(rune('0'+serial)) + "0" + string(rune('0'+check))
			if v.IsValid(code) {
				accepted = true
			}
		}
	}
	if !accepted {
		t.Fatalf("expected some 2000-02-29 code to validate")
	}
	// 1900-02-29 does not exist.
	for check := 0; check < 10; check++ {
		code := "3000229000" + string(rune('0'+check))
		if v.IsValid(code) {
			t.Fatalf("expected 1900-02-29 code %s to be rejected", code)
		}
	}
}
