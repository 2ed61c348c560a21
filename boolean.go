package dertlv

/*
boolean.go implements the BOOLEAN decoder, grounded on Boolean.read
(bool.go), tightened from "any nonzero byte is true" to the strict DER
rule: only 0x00 and 0xFF are accepted.
*/

// DecodeBoolean decodes tok's content as an ASN.1 BOOLEAN. Length must
// be exactly 1, and the single content byte must be 0x00 or 0xFF;
// anything else is ErrInvalid.
func DecodeBoolean(tok Token) (bool, error) {
	if tok.Class != ClassUniversal || tok.Tag != TagBoolean {
		return false, newError(KindInvalid, "not a BOOLEAN token")
	}
	if len(tok.Content) != 1 {
		return false, newError(KindInvalid, "BOOLEAN content must be exactly one octet")
	}
	switch tok.Content[0] {
	case 0x00:
		return false, nil
	case 0xFF:
		return true, nil
	default:
		return false, newError(KindInvalid, "BOOLEAN content must be 0x00 or 0xFF")
	}
}
