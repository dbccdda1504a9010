package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Float é um float64 que serializa NaN e ±Inf como null.
// Todo número de ponto flutuante das respostas passa por este tipo.
type Float float64

// MarshalJSON implementa json.Marshaler
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

// Entry é um par chave/valor de um OrderedMap
type Entry[V any] struct {
	Key   string
	Value V
}

// OrderedMap serializa como objeto JSON preservando a ordem das entradas
type OrderedMap[V any] []Entry[V]

// Get retorna o valor de uma chave
func (m OrderedMap[V]) Get(key string) (V, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Keys retorna as chaves na ordem
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// MarshalJSON implementa json.Marshaler
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Counts é o formato das contagens agrupadas
type Counts = OrderedMap[int]

// Means é o formato das médias agrupadas
type Means = OrderedMap[Float]
