package session

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"storefront/internal/kv"
)

// Identity es lo que una sesión resuelve: quién es y qué rol tiene
type Identity struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Store maneja sesiones opacas (token → identidad) y valores flash de un
// solo uso, sobre el almacén clave-valor con TTL
type Store struct {
	kv  *kv.Store
	ttl time.Duration
}

func NewStore(kvStore *kv.Store, ttl time.Duration) *Store {
	return &Store{kv: kvStore, ttl: ttl}
}

// Create emite un token nuevo para la identidad dada
func (s *Store) Create(userID, role string) string {
	token := uuid.NewString()
	data, _ := json.Marshal(Identity{UserID: userID, Role: role})
	s.kv.Set("session:"+token, data, s.ttl)
	return token
}

// Resolve traduce un token a su identidad, si la sesión sigue vigente
func (s *Store) Resolve(token string) (Identity, bool) {
	var id Identity
	found, err := s.kv.Unmarshal("session:"+token, &id)
	if err != nil || !found {
		return Identity{}, false
	}
	return id, true
}

// Destroy invalida el token
func (s *Store) Destroy(token string) {
	s.kv.Delete("session:" + token)
}

// StashFlash guarda un valor asociado al token para mostrarse una sola vez
func (s *Store) StashFlash(token string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.kv.Set("flash:"+token, data, s.ttl)
	return nil
}

// PopFlash devuelve el valor flash y lo borra; la segunda lectura no
// encuentra nada
func (s *Store) PopFlash(token string, target interface{}) (bool, error) {
	raw, found := s.kv.Pop("flash:" + token)
	if !found {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, err
	}
	return true, nil
}
