package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/internal/usecases/backup"
	"github.com/maridopro/pricing-api/pkg/apiErrors"
)

// ExportBackup serializa o estado local completo em um documento portátil
func ExportBackup(service backup.BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		document, err := service.Export()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao exportar backup", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="preco-certo-backup.json"`)
		if err := json.NewEncoder(w).Encode(document); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ImportBackup restaura um documento de backup. Documento estruturalmente
// inválido é rejeitado sem alterar nenhum estado; seções malformadas são
// puladas individualmente.
func ImportBackup(service backup.BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler requisição", nil)
			return
		}

		exportDate, err := service.Import(raw)
		if err != nil {
			if errors.Is(err, backup.ErrInvalidBackup) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidBackup, "Documento de backup inválido", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao importar backup", nil)
			return
		}

		response := map[string]any{
			"message": "Backup restaurado com sucesso",
		}
		if !exportDate.IsZero() {
			response["exportDate"] = exportDate.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
