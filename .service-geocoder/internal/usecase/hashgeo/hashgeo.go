// Package hashgeo детерминированно раскладывает адреса вокруг центра города.
// Для локальной разработки и нагрузочных прогонов без внешнего геокодера.
package hashgeo

import (
	"context"
	"hash/fnv"
	"strings"
)

const spreadDeg = 0.15 // ~15 км

type UseCase struct {
	centerLat float64
	centerLon float64
}

func New(centerLat, centerLon float64) *UseCase {
	return &UseCase{centerLat: centerLat, centerLon: centerLon}
}

func (u *UseCase) Resolve(_ context.Context, address string) (float64, float64, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(address))))
	sum := h.Sum64()

	latOffset := float64(sum&0xffff)/0xffff*2 - 1
	lonOffset := float64((sum>>16)&0xffff)/0xffff*2 - 1

	return u.centerLat + latOffset*spreadDeg, u.centerLon + lonOffset*spreadDeg, nil
}
