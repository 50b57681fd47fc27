package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundWithTwoDecimalPlace arredonda para precisão de moeda. Usado apenas na
// apresentação: o motor de cálculo nunca arredonda valores intermediários.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SanitizeAmount normaliza valores numéricos vindos do usuário: NaN,
// infinito e negativos viram 0 em vez de erro.
func SanitizeAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}

	return f
}

// ParseMoney converte entrada de texto em valor monetário aceitando vírgula
// como separador decimal (padrão brasileiro). Entrada inválida vira 0.
func ParseMoney(s string) float64 {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}

	return SanitizeAmount(value)
}
