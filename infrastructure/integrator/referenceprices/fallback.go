package referenceprices

import "github.com/maridopro/pricing-api/internal/domain"

// fallbackPrices é a tabela embutida usada quando a fonte externa falha ou
// está vazia.
var fallbackPrices = []domain.ReferencePriceEntry{
	// Elétrica
	{ID: 101, Category: "Elétrica", Name: "Troca de Chuveiro Simples", Min: 90, Max: 150},
	{ID: 102, Category: "Elétrica", Name: "Troca de Chuveiro Elétrico/Eletrônico", Min: 120, Max: 180},
	{ID: 103, Category: "Elétrica", Name: "Troca de Resistência", Min: 60, Max: 90},
	{ID: 104, Category: "Elétrica", Name: "Instalação de Tomada/Interruptor", Min: 50, Max: 80},
	{ID: 105, Category: "Elétrica", Name: "Troca de Disjuntor", Min: 80, Max: 120},
	{ID: 106, Category: "Elétrica", Name: "Instalação de Luminária/Lustre Simples", Min: 90, Max: 150},
	{ID: 107, Category: "Elétrica", Name: "Instalação de Ventilador de Teto", Min: 150, Max: 250},
	{ID: 108, Category: "Elétrica", Name: "Instalação de Sensor de Presença", Min: 80, Max: 120},
	{ID: 109, Category: "Elétrica", Name: "Extensão de Ponto de Tomada (ext)", Min: 120, Max: 200},

	// Hidráulica
	{ID: 201, Category: "Hidráulica", Name: "Troca de Torneira Simples", Min: 70, Max: 100},
	{ID: 202, Category: "Hidráulica", Name: "Troca de Torneira Gourmet/Misturador", Min: 120, Max: 200},
	{ID: 203, Category: "Hidráulica", Name: "Troca de Sifão", Min: 70, Max: 100},
	{ID: 204, Category: "Hidráulica", Name: "Reparo em Caixa Acoplada", Min: 100, Max: 150},
	{ID: 205, Category: "Hidráulica", Name: "Instalação de Vaso Sanitário", Min: 180, Max: 300},
	{ID: 206, Category: "Hidráulica", Name: "Instalação de Máquina de Lavar", Min: 100, Max: 160},
	{ID: 207, Category: "Hidráulica", Name: "Troca de Reparo de Registro", Min: 120, Max: 180},
	{ID: 208, Category: "Hidráulica", Name: "Desentupimento de Pia/Ralo (Simples)", Min: 150, Max: 250},
	{ID: 209, Category: "Hidráulica", Name: "Limpeza de Caixa d'água (até 1000L)", Min: 250, Max: 400},

	// Montagem de Móveis
	{ID: 301, Category: "Montagem", Name: "Montagem de Guarda-Roupa (3 portas)", Min: 250, Max: 400},
	{ID: 302, Category: "Montagem", Name: "Montagem de Guarda-Roupa (6 portas)", Min: 400, Max: 600},
	{ID: 303, Category: "Montagem", Name: "Montagem de Mesa de Jantar c/ Cadeiras", Min: 150, Max: 250},
	{ID: 304, Category: "Montagem", Name: "Montagem de Rack/Painel de TV", Min: 120, Max: 250},
	{ID: 305, Category: "Montagem", Name: "Montagem de Cômoda/Gaveteiro", Min: 120, Max: 200},
	{ID: 306, Category: "Montagem", Name: "Montagem de Cama de Casal/Box", Min: 100, Max: 180},
	{ID: 307, Category: "Montagem", Name: "Montagem de Armário de Cozinha (Módulo)", Min: 80, Max: 150},

	// Instalações Diversas
	{ID: 401, Category: "Diversos", Name: "Instalação de Suporte de TV", Min: 100, Max: 180},
	{ID: 402, Category: "Diversos", Name: "Instalação de Cortina/Persiana", Min: 80, Max: 150},
	{ID: 403, Category: "Diversos", Name: "Instalação de Varal de Teto", Min: 100, Max: 160},
	{ID: 404, Category: "Diversos", Name: "Instalação de Prateleira/Nicho (und)", Min: 50, Max: 90},
	{ID: 405, Category: "Diversos", Name: "Instalação de Quadro/Espelho", Min: 50, Max: 100},
	{ID: 406, Category: "Diversos", Name: "Troca de Fechadura", Min: 100, Max: 180},
	{ID: 407, Category: "Diversos", Name: "Regulagem de Portas de Armário", Min: 80, Max: 150},
}

// FallbackPrices retorna uma cópia da tabela embutida.
func FallbackPrices() []domain.ReferencePriceEntry {
	entries := make([]domain.ReferencePriceEntry, len(fallbackPrices))
	copy(entries, fallbackPrices)
	return entries
}
