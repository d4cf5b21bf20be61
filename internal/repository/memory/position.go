package memory

import (
	"cmp"
	"context"
	"slices"

	"relay/internal/entities"
)

// SaveCourierPosition сохраняет последнюю позицию курьера.
// Позиции не транзакционны: побеждает последняя запись.
func (s *Store) SaveCourierPosition(_ context.Context, position entities.CourierPosition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.positions[position.CourierID]
	if ok && current.ReportedAt.After(position.ReportedAt) {
		return nil
	}
	s.positions[position.CourierID] = position
	return nil
}

func (s *Store) GetCourierPosition(_ context.Context, courierID string) (*entities.CourierPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.positions[courierID]
	if !ok {
		return nil, entities.ErrCourierPositionNotFound
	}
	return &p, nil
}

func (s *Store) ListAvailableCouriers(_ context.Context) ([]entities.CourierPosition, error) {
	s.mu.RLock()
	positions := make([]entities.CourierPosition, 0, len(s.positions))
	for _, p := range s.positions {
		if p.Availability == entities.CourierAvailable {
			positions = append(positions, p)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(positions, func(a, b entities.CourierPosition) int {
		return cmp.Compare(a.CourierID, b.CourierID)
	})
	return positions, nil
}
