// Pacote timezone resolve o fuso do profissional. Todo cálculo de
// agenda acontece no fuso de quem atende, não no do servidor.
package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var cache sync.Map // nome IANA -> *time.Location

// Location resolve tz, caindo para o fuso padrão quando o valor é
// vazio ou desconhecido.
func Location(tz string) *time.Location {
	if tz == "" {
		tz = DefaultTimezone
	}

	if loc, ok := cache.Load(tz); ok {
		return loc.(*time.Location)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
	}

	cache.Store(tz, loc)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
