package identifying

import (
	"errors"
	"strings"

	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/domain"
)

// ErrNameRequired é retornado quando o login é tentado sem nome.
var ErrNameRequired = errors.New("name is required")

// IdentityService é o portão local trivial do aplicativo: guarda quem está
// usando, sem senha nem sessão. Ausência de identidade significa que ninguém
// fez login.
type IdentityService interface {
	Login(name string) (*domain.Identity, error)
	Logout() error
	Current() (*domain.Identity, error)
	Ready() bool
}

type Service struct {
	store *localstore.Store
}

func NewService(store *localstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Login(name string) (*domain.Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	identity := domain.Identity{Name: name}

	if err := s.store.Save(localstore.KeyIdentity, identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// Logout remove a chave de identidade. A ausência é representada por
// ausência, nunca por um marcador nulo persistido.
func (s *Service) Logout() error {
	return s.store.Remove(localstore.KeyIdentity)
}

// Current retorna a identidade atual ou nil quando ninguém fez login.
func (s *Service) Current() (*domain.Identity, error) {
	var identity domain.Identity

	found, err := s.store.Load(localstore.KeyIdentity, &identity)
	if err != nil {
		return nil, err
	}

	if !found || identity.Name == "" {
		return nil, nil
	}

	return &identity, nil
}

// Ready indica se o armazenamento já terminou a carga inicial. Decisões de
// navegação que dependem da identidade devem esperar por isso.
func (s *Service) Ready() bool {
	return s.store.IsReady()
}
