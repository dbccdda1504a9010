package dataset

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock é a fonte de tempo das janelas móveis e do nome do arquivo exportado.
// Testes congelam o tempo via SetClock.
var clock = clockwork.NewRealClock()

// SetClock troca a fonte de tempo. nil restaura o relógio real.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now retorna o instante atual em UTC segundo o relógio configurado
func Now() time.Time {
	return clock.Now().UTC()
}
