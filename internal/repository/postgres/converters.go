package postgres

import "relay/internal/entities"

func DeliveryToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	slots := make([]entities.TimeSlot, 0, len(d.PreferredTimeSlots))
	for _, slot := range d.PreferredTimeSlots {
		slots = append(slots, entities.TimeSlot{From: slot.From, To: slot.To})
	}

	return &entities.Delivery{
		ID:         d.ID,
		ClientID:   d.ClientID,
		SegmentIDs: d.SegmentIDs,
		Package: entities.PackageInfo{
			Type:       entities.PackageType(d.PackageType),
			WeightKg:   d.PackageWeightKg,
			Dimensions: d.PackageDimensions,
			Notes:      d.PackageNotes,
		},
		Urgency:             entities.UrgencyTier(d.Urgency),
		SpecialInstructions: d.SpecialInstructions,
		PreferredTimeSlots:  slots,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func DeliveryFromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}

	slots := make([]TimeSlotDB, 0, len(d.PreferredTimeSlots))
	for _, slot := range d.PreferredTimeSlots {
		slots = append(slots, TimeSlotDB{From: slot.From, To: slot.To})
	}

	segmentIDs := d.SegmentIDs
	if segmentIDs == nil {
		segmentIDs = []string{}
	}

	return &DeliveryDB{
		ID:                  d.ID,
		ClientID:            d.ClientID,
		SegmentIDs:          segmentIDs,
		PackageType:         d.Package.Type.String(),
		PackageWeightKg:     d.Package.WeightKg,
		PackageDimensions:   d.Package.Dimensions,
		PackageNotes:        d.Package.Notes,
		Urgency:             d.Urgency.String(),
		SpecialInstructions: d.SpecialInstructions,
		PreferredTimeSlots:  slots,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func SegmentToDomain(s *SegmentDB) *entities.Segment {
	if s == nil {
		return nil
	}
	return &entities.Segment{
		ID:         s.ID,
		DeliveryID: s.DeliveryID,
		Index:      s.Index,
		Start: entities.Location{
			Address:     s.StartAddress,
			Coordinates: entities.Coordinates{Lat: s.StartLat, Lon: s.StartLon},
		},
		End: entities.Location{
			Address:     s.EndAddress,
			Coordinates: entities.Coordinates{Lat: s.EndLat, Lon: s.EndLon},
		},
		DistanceKm:        s.DistanceKm,
		DurationMin:       s.DurationMin,
		EstimatedCost:     s.EstimatedCost,
		Status:            entities.SegmentStatus(s.Status),
		CourierID:         s.CourierID,
		ReplacesSegmentID: s.ReplacesSegmentID,
		LastActivityAt:    s.LastActivityAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func SegmentFromDomain(s *entities.Segment) *SegmentDB {
	if s == nil {
		return nil
	}
	return &SegmentDB{
		ID:                s.ID,
		DeliveryID:        s.DeliveryID,
		Index:             s.Index,
		StartAddress:      s.Start.Address,
		StartLat:          s.Start.Coordinates.Lat,
		StartLon:          s.Start.Coordinates.Lon,
		EndAddress:        s.End.Address,
		EndLat:            s.End.Coordinates.Lat,
		EndLon:            s.End.Coordinates.Lon,
		DistanceKm:        s.DistanceKm,
		DurationMin:       s.DurationMin,
		EstimatedCost:     s.EstimatedCost,
		Status:            s.Status.String(),
		CourierID:         s.CourierID,
		ReplacesSegmentID: s.ReplacesSegmentID,
		LastActivityAt:    s.LastActivityAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func ProposalToDomain(p *ProposalDB) *entities.Proposal {
	if p == nil {
		return nil
	}
	return &entities.Proposal{
		SegmentID:           p.SegmentID,
		CourierID:           p.CourierID,
		ProposedCost:        p.ProposedCost,
		ProposedDurationMin: p.ProposedDurationMin,
		SubmittedAt:         p.SubmittedAt,
	}
}

func HandoverToDomain(h *HandoverDB) *entities.HandoverEvent {
	if h == nil {
		return nil
	}
	return &entities.HandoverEvent{
		ID:            h.ID,
		DeliveryID:    h.DeliveryID,
		FromSegmentID: h.FromSegmentID,
		ToSegmentID:   h.ToSegmentID,
		Location: entities.Location{
			Address:     h.LocationAddress,
			Coordinates: entities.Coordinates{Lat: h.LocationLat, Lon: h.LocationLon},
		},
		VerificationCode:    h.VerificationCode,
		ConfirmedBySender:   h.ConfirmedBySender,
		ConfirmedByReceiver: h.ConfirmedByReceiver,
		CreatedAt:           h.CreatedAt,
		CompletedAt:         h.CompletedAt,
	}
}

func HandoverFromDomain(h *entities.HandoverEvent) *HandoverDB {
	if h == nil {
		return nil
	}
	return &HandoverDB{
		ID:                  h.ID,
		DeliveryID:          h.DeliveryID,
		FromSegmentID:       h.FromSegmentID,
		ToSegmentID:         h.ToSegmentID,
		LocationAddress:     h.Location.Address,
		LocationLat:         h.Location.Coordinates.Lat,
		LocationLon:         h.Location.Coordinates.Lon,
		VerificationCode:    h.VerificationCode,
		ConfirmedBySender:   h.ConfirmedBySender,
		ConfirmedByReceiver: h.ConfirmedByReceiver,
		CreatedAt:           h.CreatedAt,
		CompletedAt:         h.CompletedAt,
	}
}

func CourierPositionToDomain(p *CourierPositionDB) *entities.CourierPosition {
	if p == nil {
		return nil
	}
	return &entities.CourierPosition{
		CourierID:    p.CourierID,
		Coordinates:  entities.Coordinates{Lat: p.Lat, Lon: p.Lon},
		Availability: entities.CourierAvailability(p.Availability),
		ReportedAt:   p.ReportedAt,
	}
}
