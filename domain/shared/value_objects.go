package shared

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	cpfFirstWeights   = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

func voError(field, code, message string) error {
	return NewValidationError(strings.ToLower(field), []Violation{{Field: field, Code: code, Message: message}})
}

// OnlyDigits strips every non-digit rune.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF checks the digit count only; see HasValidCheckDigits for the mod-11 rule.
func IsValidCPF(s string) bool {
	return len(OnlyDigits(s)) == cpfLength
}

func IsValidCNPJ(s string) bool {
	return len(OnlyDigits(s)) == cnpjLength
}

func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// ValidCPFCheckDigits applies the official CPF verification algorithm.
func ValidCPFCheckDigits(s string) bool {
	d := OnlyDigits(s)
	if len(d) != cpfLength || repeated(d) {
		return false
	}
	return checkDigit(d[:9], cpfFirstWeights, cpfRemainder) == d[9] &&
		checkDigit(d[:10], cpfSecondWeights, cpfRemainder) == d[10]
}

// ValidCNPJCheckDigits applies the official CNPJ verification algorithm.
func ValidCNPJCheckDigits(s string) bool {
	d := OnlyDigits(s)
	if len(d) != cnpjLength || repeated(d) {
		return false
	}
	return checkDigit(d[:12], cnpjFirstWeights, cnpjRemainder) == d[12] &&
		checkDigit(d[:13], cnpjSecondWeights, cnpjRemainder) == d[13]
}

func checkDigit(digits string, weights []int, fold func(sum int) int) byte {
	sum := 0
	for i := range weights {
		sum += int(digits[i]-'0') * weights[i]
	}
	return byte('0' + fold(sum))
}

func cpfRemainder(sum int) int {
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

func cnpjRemainder(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func repeated(d string) bool {
	return strings.Count(d, d[:1]) == len(d)
}

// Cpf is a Brazilian individual taxpayer number, stored as 11 digits.
type Cpf struct {
	value string
}

func NewCpf(raw string) (Cpf, error) {
	digits := OnlyDigits(raw)
	if len(digits) != cpfLength {
		return Cpf{}, voError("CPF", CodeCPF, "CPF inválido")
	}
	return Cpf{value: digits}, nil
}

func (c Cpf) Value() string             { return c.value }
func (c Cpf) String() string            { return c.value }
func (c Cpf) IsZero() bool              { return c.value == "" }
func (c Cpf) Equals(other Cpf) bool     { return c.value == other.value }
func (c Cpf) HasValidCheckDigits() bool { return ValidCPFCheckDigits(c.value) }

// Cnpj is a Brazilian company taxpayer number, stored as 14 digits.
type Cnpj struct {
	value string
}

func NewCnpj(raw string) (Cnpj, error) {
	digits := OnlyDigits(raw)
	if len(digits) != cnpjLength {
		return Cnpj{}, voError("CNPJ", CodeCNPJ, "CNPJ inválido")
	}
	return Cnpj{value: digits}, nil
}

func (c Cnpj) Value() string             { return c.value }
func (c Cnpj) String() string            { return c.value }
func (c Cnpj) IsZero() bool              { return c.value == "" }
func (c Cnpj) Equals(other Cnpj) bool    { return c.value == other.value }
func (c Cnpj) HasValidCheckDigits() bool { return ValidCNPJCheckDigits(c.value) }

// Email is a trimmed, lower-cased address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailRegex.MatchString(email) {
		return Email{}, voError("Email", CodeEmail, "Email inválido")
	}
	return Email{value: email}, nil
}

func (e Email) Value() string           { return e.value }
func (e Email) String() string          { return e.value }
func (e Email) Equals(other Email) bool { return e.value == other.value }

// Senha keeps only base64(SHA-256(plain)); the plaintext is discarded.
type Senha struct {
	hash string
}

func NewSenha(plain string) (Senha, error) {
	if plain == "" {
		return Senha{}, voError("Senha", CodeRequired, "Senha é obrigatória")
	}
	return Senha{hash: hashSenha(plain)}, nil
}

// SenhaFromHash rebuilds a Senha loaded from storage.
func SenhaFromHash(hash string) Senha {
	return Senha{hash: hash}
}

func hashSenha(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s Senha) Hash() string            { return s.hash }
func (s Senha) IsZero() bool            { return s.hash == "" }
func (s Senha) Equals(other Senha) bool { return s.hash == other.hash }

// String never exposes the hash.
func (s Senha) String() string { return "********" }

// Matches compares plain against the stored hash in constant time.
func (s Senha) Matches(plain string) bool {
	if s.hash == "" || plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.hash), []byte(hashSenha(plain))) == 1
}

// HistoryAction is the kind of change an audit-trail entry records.
type HistoryAction struct {
	value string
}

var (
	ActionInsert = HistoryAction{value: "I"}
	ActionUpdate = HistoryAction{value: "U"}
	ActionDelete = HistoryAction{value: "D"}
)

func NewHistoryAction(raw string) (HistoryAction, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	switch v {
	case "":
		return HistoryAction{}, voError("Ação", CodeRequired, "Ação é obrigatória")
	case "I", "U", "D":
		return HistoryAction{value: v}, nil
	default:
		return HistoryAction{}, voError("Ação", "action", "Ação inválida. Use I, U ou D")
	}
}

func (a HistoryAction) Value() string                   { return a.value }
func (a HistoryAction) String() string                  { return a.value }
func (a HistoryAction) Equals(other HistoryAction) bool { return a.value == other.value }
