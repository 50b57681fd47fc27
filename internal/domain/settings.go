package domain

// SettingsProfile guarda os parâmetros de custo do profissional que
// alimentam o motor de cálculo de orçamentos.
type SettingsProfile struct {
	BusinessName    string  `json:"businessName"`
	FuelPrice       float64 `json:"fuelPrice"`       // R$/litro
	FuelConsumption float64 `json:"fuelConsumption"` // km/litro
	MaintenanceCost float64 `json:"maintenanceCost"` // R$/km
	HourlyRate      float64 `json:"hourlyRate"`      // R$/hora
	MonthlyGoal     float64 `json:"monthlyGoal"`
	ToolKitValue    float64 `json:"toolKitValue"`
	TaxRate         float64 `json:"taxRate"` // percentual
}

// DefaultSettings retorna o perfil de custos padrão usado no primeiro acesso.
func DefaultSettings() SettingsProfile {
	return SettingsProfile{
		BusinessName:    "Preço Certo Marido de Aluguel",
		FuelPrice:       5.50,
		FuelConsumption: 10,
		MaintenanceCost: 0.20,
		HourlyRate:      50.00,
		MonthlyGoal:     5000,
		ToolKitValue:    3000,
		TaxRate:         5,
	}
}
