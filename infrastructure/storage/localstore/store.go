package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/maridopro/pricing-api/pkg/log"
)

// Chaves do armazenamento local. Cada componente do estado é preso a uma
// chave fixa, herdada do aplicativo original.
const (
	KeyIdentity = "marido_pro_user"
	KeySettings = "marido_pro_settings"
	KeyHistory  = "marido_pro_history"
	KeyCatalog  = "marido_pro_myprices"
)

var knownKeys = []string{KeyIdentity, KeySettings, KeyHistory, KeyCatalog}

// Store é o armazenamento chave-valor persistente da aplicação: um arquivo
// JSON por chave dentro do diretório de dados, espelhado em disco a cada
// mutação. Conteúdo corrompido é tratado como ausência e a chave é limpa,
// nunca derruba a aplicação.
type Store struct {
	dir   string
	mu    sync.Mutex
	ready chan struct{}
}

// New cria o armazenamento e dispara o aquecimento inicial em segundo plano.
// Decisões que dependem do estado persistido (ex.: identidade) devem esperar
// o sinal de Ready.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório de dados")
	}

	s := &Store{
		dir:   dir,
		ready: make(chan struct{}),
	}

	go s.warm()

	return s, nil
}

// Ready é fechado quando a varredura inicial do armazenamento termina.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// IsReady indica se a varredura inicial já terminou.
func (s *Store) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// warm valida todas as chaves conhecidas e remove as corrompidas antes de
// liberar o sinal de prontidão.
func (s *Store) warm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range knownKeys {
		raw, err := os.ReadFile(s.path(key))
		if err != nil {
			continue
		}

		if !json.Valid(raw) {
			log.L.WithField("key", key).Warn("Conteúdo corrompido no armazenamento local, limpando chave")
			if err := os.Remove(s.path(key)); err != nil {
				log.L.WithError(err).WithField("key", key).Error("Erro ao limpar chave corrompida")
			}
		}
	}

	close(s.ready)
}

// Load lê o valor da chave para v. Retorna false quando a chave está ausente
// ou o conteúdo não tem a forma esperada; nesse último caso a chave é limpa.
func (s *Store) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "erro ao ler chave %q", key)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Conteúdo inválido no armazenamento local, limpando chave")

		if removeErr := os.Remove(s.path(key)); removeErr != nil {
			return false, errors.Wrapf(removeErr, "erro ao limpar chave corrompida %q", key)
		}

		return false, nil
	}

	return true, nil
}

// Save grava o valor da chave em disco de forma atômica. Gravações da mesma
// chave são serializadas pelo mutex: a última sempre vence.
func (s *Store) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar chave %q", key)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar chave %q", key)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return errors.Wrapf(err, "erro ao efetivar gravação da chave %q", key)
	}

	return nil
}

// Remove apaga a chave. Ausência é representada por ausência: remover uma
// chave inexistente não é erro.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "erro ao remover chave %q", key)
	}

	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
