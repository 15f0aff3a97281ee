package helper

import (
	"regexp"
)

const (
	DocumentCpf  = "cpf"
	DocumentCnpj = "cnpj"
)

var nonDigits = regexp.MustCompile(`\D`)

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ClassifyDocument tells a CPF (11 digits) from a CNPJ (14 digits) by digit
// count, ignoring punctuation. Returns "" for anything else.
func ClassifyDocument(value string) string {
	switch len(OnlyDigits(value)) {
	case 11:
		return DocumentCpf
	case 14:
		return DocumentCnpj
	default:
		return ""
	}
}

// IsValidDocument reports whether value has a CPF or CNPJ digit count.
func IsValidDocument(value string) bool {
	return ClassifyDocument(value) != ""
}
