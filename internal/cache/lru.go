package cache

import (
	"container/list"
	"sync"
	"time"
)

// entry representa uma entrada no cache
type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache é um cache LRU com TTL, seguro para uso concorrente.
// Guarda as respostas agregadas, que só dependem da tabela imutável.
type LRUCache[V any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
}

// NewLRUCache cria um cache com a capacidade e o TTL informados.
// Capacidade <= 0 desativa o cache.
func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	return &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get recupera um valor do cache
func (c *LRUCache[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil || c.capacity <= 0 {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	element, found := c.items[key]
	if !found {
		return zero, false
	}

	e := element.Value.(*entry[V])
	if c.now().After(e.expiration) {
		c.removeElement(element)
		return zero, false
	}

	c.order.MoveToBack(element)
	return e.value, true
}

// Set adiciona ou atualiza um valor
func (c *LRUCache[V]) Set(key string, value V) {
	if c == nil || c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)

	if element, found := c.items[key]; found {
		c.order.MoveToBack(element)
		e := element.Value.(*entry[V])
		e.value = value
		e.expiration = expiration
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Front(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	c.items[key] = c.order.PushBack(&entry[V]{key: key, value: value, expiration: expiration})
}

// GetOrCompute retorna o valor em cache ou calcula, guarda e retorna.
// O segundo retorno indica se houve acerto.
func (c *LRUCache[V]) GetOrCompute(key string, compute func() V) (V, bool) {
	if v, ok := c.Get(key); ok {
		return v, true
	}
	v := compute()
	c.Set(key, v)
	return v, false
}

// Size retorna o número de itens no cache
func (c *LRUCache[V]) Size() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// removeElement remove um elemento da lista e do mapa (chamar com lock)
func (c *LRUCache[V]) removeElement(element *list.Element) {
	c.order.Remove(element)
	delete(c.items, element.Value.(*entry[V]).key)
}
