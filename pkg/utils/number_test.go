package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Arredonda para cima", input: 191.44125, expected: 191.44},
		{name: "Arredonda para baixo", input: 17.40375, expected: 17.40},
		{name: "Já arredondado", input: 150.50, expected: 150.50},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithTwoDecimalPlace(tt.input), 1e-9)
		})
	}
}

func TestSanitizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Valor válido passa direto", input: 42.5, expected: 42.5},
		{name: "NaN vira zero", input: math.NaN(), expected: 0},
		{name: "Infinito vira zero", input: math.Inf(1), expected: 0},
		{name: "Infinito negativo vira zero", input: math.Inf(-1), expected: 0},
		{name: "Negativo vira zero", input: -15, expected: 0},
		{name: "Zero permanece zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeAmount(tt.input))
		})
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Vírgula como separador decimal", input: "5,50", expected: 5.50},
		{name: "Ponto como separador decimal", input: "5.50", expected: 5.50},
		{name: "Espaços em volta", input: "  120,00  ", expected: 120},
		{name: "Entrada inválida vira zero", input: "abc", expected: 0},
		{name: "Entrada vazia vira zero", input: "", expected: 0},
		{name: "Negativo vira zero", input: "-10,00", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseMoney(tt.input), 1e-9)
		})
	}
}
