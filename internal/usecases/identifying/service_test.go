package identifying

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	select {
	case <-store.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("armazenamento não ficou pronto a tempo")
	}

	return NewService(store)
}

func TestService_Login(t *testing.T) {
	service := newTestService(t)

	identity, err := service.Login("  José  ")
	require.NoError(t, err)
	assert.Equal(t, "José", identity.Name)

	current, err := service.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "José", current.Name)
}

func TestService_LoginSemNome(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name  string
		input string
	}{
		{name: "Nome vazio", input: ""},
		{name: "Nome só com espaços", input: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.input)
			assert.ErrorIs(t, err, ErrNameRequired)
		})
	}

	// Nenhuma identidade foi persistida
	current, err := service.Current()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestService_CurrentSemLogin(t *testing.T) {
	service := newTestService(t)

	current, err := service.Current()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestService_Logout(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login("José")
	require.NoError(t, err)

	require.NoError(t, service.Logout())

	current, err := service.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	// Logout repetido não é erro: ausência é representada por ausência
	assert.NoError(t, service.Logout())
}

func TestService_Ready(t *testing.T) {
	service := newTestService(t)
	assert.True(t, service.Ready())
}
