package marketplace

import (
	"strings"

	"relay/internal/entities"
)

// contiguityToleranceKm допуск на несовпадение координат стыка соседних сегментов
const contiguityToleranceKm = 0.05

func validateDraft(draft entities.DeliveryDraft) error {
	var v entities.Violations

	if strings.TrimSpace(draft.ClientID) == "" {
		v.Add("client id is required")
	}
	if len(draft.Legs) == 0 {
		v.Add("at least one segment is required")
	}

	for i, leg := range draft.Legs {
		if leg.Index != i {
			v.Add("segment #%d has index %d, segments must be ordered from 0", i+1, leg.Index)
		}
		if !leg.Start.Coordinates.IsValid() || !leg.End.Coordinates.IsValid() {
			v.Add("segment #%d has coordinates out of range", i+1)
		}
		if leg.DistanceKm < 0 || leg.DurationMin < 0 || leg.EstimatedCost < 0 {
			v.Add("segment #%d has negative distance, duration or cost", i+1)
		}
		if i > 0 && !joined(draft.Legs[i-1].End, leg.Start) {
			v.Add("segment #%d does not start where segment #%d ends", i+1, i)
		}
	}

	draft.Package.Validate(&v)

	if !draft.Urgency.IsValid() {
		v.Add("urgency %q is not one of normal, urgent, express", draft.Urgency)
	}
	for i, slot := range draft.PreferredTimeSlots {
		if !slot.From.Before(slot.To) {
			v.Add("time slot #%d must end after it starts", i+1)
		}
	}

	return v.Err()
}

func joined(end, start entities.Location) bool {
	if strings.EqualFold(strings.TrimSpace(end.Address), strings.TrimSpace(start.Address)) {
		return true
	}
	return end.Coordinates.DistanceKm(start.Coordinates) <= contiguityToleranceKm
}

func validateProposal(proposal entities.Proposal) error {
	var v entities.Violations

	if strings.TrimSpace(proposal.SegmentID) == "" {
		v.Add("segment id is required")
	}
	if strings.TrimSpace(proposal.CourierID) == "" {
		v.Add("courier id is required")
	}
	if proposal.ProposedCost <= 0 {
		v.Add("proposed cost must be greater than 0")
	}
	if proposal.ProposedDurationMin <= 0 {
		v.Add("proposed duration must be greater than 0")
	}

	return v.Err()
}

func validateSearch(position *entities.Coordinates, radiusKm float64) error {
	var v entities.Violations

	if position != nil && !position.IsValid() {
		v.Add("position is out of range")
	}
	if radiusKm < 0 {
		v.Add("radius must not be negative")
	}

	return v.Err()
}
