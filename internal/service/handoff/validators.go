package handoff

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"relay/internal/entities"
)

func validateActor(segmentID, actorID string, location *entities.Location) error {
	var v entities.Violations
	if segmentID == "" {
		v.Add("segment_id is required")
	}
	if actorID == "" {
		v.Add("actor_id is required")
	}
	if location != nil && !location.Coordinates.IsValid() {
		v.Add("location coordinates are out of range")
	}
	return v.Err()
}

func validateCoordination(req entities.CoordinationRequest) error {
	var v entities.Violations
	if req.DeliveryID == "" {
		v.Add("delivery_id is required")
	}
	if req.CurrentSegmentID == "" {
		v.Add("current_segment_id is required")
	}
	if req.NextSegmentID == "" {
		v.Add("next_segment_id is required")
	}
	if req.CurrentSegmentID != "" && req.CurrentSegmentID == req.NextSegmentID {
		v.Add("current_segment_id and next_segment_id must differ")
	}
	if req.ActorID == "" {
		v.Add("actor_id is required")
	}
	if req.Location != nil && !req.Location.Coordinates.IsValid() {
		v.Add("location coordinates are out of range")
	}
	return v.Err()
}

func validateConfirmation(c entities.HandoverConfirmation) error {
	var v entities.Violations
	if c.DeliveryID == "" {
		v.Add("delivery_id is required")
	}
	if c.FromSegmentID == "" {
		v.Add("from_segment_id is required")
	}
	if c.ToSegmentID == "" {
		v.Add("to_segment_id is required")
	}
	if c.FromSegmentID != "" && c.FromSegmentID == c.ToSegmentID {
		v.Add("from_segment_id and to_segment_id must differ")
	}
	if c.ConfirmerID == "" {
		v.Add("confirmer_id is required")
	}
	if c.Location != nil && !c.Location.Coordinates.IsValid() {
		v.Add("location coordinates are out of range")
	}
	return v.Err()
}

// newVerificationCode возвращает случайный код из 6 цифр.
func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// codeMatches: без ожидаемого кода подходит любой ввод.
func codeMatches(expected, given *string) bool {
	if expected == nil {
		return true
	}
	if given == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*expected), []byte(*given)) == 1
}
