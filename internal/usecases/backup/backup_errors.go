package backup

import "errors"

// ErrInvalidBackup indica um documento de backup estruturalmente inválido.
// Nenhum estado é alterado quando esse erro é retornado.
var ErrInvalidBackup = errors.New("invalid backup document")
