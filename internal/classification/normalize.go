package classification

import (
	"strings"
	"unicode"
)

// CodeLength - каноническая длина кода ТН ВЭД
const CodeLength = 10

// Code - нормализованный код ТН ВЭД, ровно 10 цифр
type Code string

// Normalized - результат нормализации с признаками потерь
type Normalized struct {
	Code      Code
	Digits    int
	Truncated bool
	Padded    bool
}

// Warnings - предупреждения о неточной нормализации
func (n Normalized) Warnings() []string {
	var w []string
	if n.Truncated {
		w = append(w, "classification code longer than 10 digits was truncated, rule match may be wrong")
	}
	if n.Padded {
		w = append(w, "classification code shorter than 10 digits was left-padded with zeros")
	}
	return w
}

// Inspect - нормализует код и сообщает, была ли обрезка или дополнение
func Inspect(raw string) Normalized {
	var b strings.Builder
	for _, r := range raw {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	n := Normalized{Digits: len(digits)}
	if len(digits) > CodeLength {
		digits = digits[:CodeLength]
		n.Truncated = true
	}
	if len(digits) < CodeLength {
		digits = strings.Repeat("0", CodeLength-len(digits)) + digits
		n.Padded = true
	}
	n.Code = Code(digits)
	return n
}

// Normalize - оставляет только цифры, обрезает до 10 и дополняет нулями слева
func Normalize(raw string) Code {
	return Inspect(raw).Code
}
