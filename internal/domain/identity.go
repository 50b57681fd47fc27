package domain

// Identity é o usuário local do aplicativo. Não há autenticação além desse
// registro: a ausência de identidade significa que ninguém fez login.
type Identity struct {
	Name string `json:"name"`
}
