package domain

import "time"

// BackupVersion é a versão atual do formato de backup. Consumidores devem
// tolerar campos extras desconhecidos em versões futuras.
const BackupVersion = 1

// BackupDocument é o retrato completo do estado local, serializado em um
// único documento portátil.
type BackupDocument struct {
	Version    int             `json:"version"`
	ExportDate time.Time       `json:"exportDate"`
	Identity   *Identity       `json:"identity,omitempty"`
	Settings   SettingsProfile `json:"settings"`
	History    []HistoryRecord `json:"history"`
	Catalog    []CatalogEntry  `json:"catalog"`
}
