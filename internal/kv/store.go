package kv

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

type item struct {
	value      interface{}
	expiration int64
}

// Store es un almacén clave-valor en memoria con TTL. Se usa para
// sesiones, valores de un solo uso y caché de lecturas del catálogo
type Store struct {
	items map[string]item
	mu    sync.RWMutex
	ttl   time.Duration
}

// New crea un Store con el TTL por defecto indicado y arranca la
// limpieza periódica de claves vencidas
func New(defaultTTL time.Duration) *Store {
	s := &Store{
		items: make(map[string]item),
		ttl:   defaultTTL,
	}
	go s.cleanupExpired()
	return s
}

// Set guarda un valor; acepta un TTL opcional distinto del default
func (s *Store) Set(key string, value interface{}, ttl ...time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	duration := s.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}

	s.items[key] = item{
		value:      value,
		expiration: time.Now().Add(duration).UnixNano(),
	}
}

// GetValue obtiene un valor vigente
func (s *Store) GetValue(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, found := s.items[key]
	if !found {
		return nil, false
	}

	// Verificar si expiró
	if time.Now().UnixNano() > it.expiration {
		return nil, false
	}

	return it.value, true
}

// Pop obtiene un valor vigente y lo elimina en la misma operación.
// Es la base de los valores de un solo uso (resumen de pago)
func (s *Store) Pop(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, found := s.items[key]
	if !found {
		return nil, false
	}

	delete(s.items, key)

	if time.Now().UnixNano() > it.expiration {
		return nil, false
	}

	return it.value, true
}

// Delete elimina una clave
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (s *Store) DeleteByPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
		}
	}
}

// Clear limpia todo el almacén
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]item)
}

// Size retorna el número de claves almacenadas
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Marshal serializa como JSON y guarda
func (s *Store) Marshal(key string, value interface{}, ttl ...time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.Set(key, data, ttl...)
	return nil
}

// Unmarshal obtiene y deserializa
func (s *Store) Unmarshal(key string, target interface{}) (bool, error) {
	data, found := s.GetValue(key)
	if !found {
		return false, nil
	}

	bytes, ok := data.([]byte)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(bytes, target); err != nil {
		return false, err
	}

	return true, nil
}

// cleanupExpired limpia claves vencidas periódicamente
func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now().UnixNano()
		for key, it := range s.items {
			if now > it.expiration {
				delete(s.items, key)
			}
		}
		s.mu.Unlock()
	}
}
