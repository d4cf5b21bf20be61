package converters

import (
	"github.com/AlekSi/pointer"
	"relay/internal/entities"
	"relay/internal/generated/dto"
)

func Location(l entities.Location) dto.Location {
	loc := dto.Location{
		Lat: l.Coordinates.Lat,
		Lon: l.Coordinates.Lon,
	}
	if l.Address != "" {
		loc.Address = pointer.To(l.Address)
	}
	return loc
}

func ToLocation(l dto.Location) entities.Location {
	return entities.Location{
		Address:     pointer.Get(l.Address),
		Coordinates: entities.Coordinates{Lat: l.Lat, Lon: l.Lon},
	}
}

func ToLocationPtr(l *dto.Location) *entities.Location {
	if l == nil {
		return nil
	}
	return pointer.To(ToLocation(*l))
}

func Package(p entities.PackageInfo) dto.PackageInfo {
	pkg := dto.PackageInfo{
		Type:       p.Type.String(),
		WeightKg:   p.WeightKg,
		Dimensions: p.Dimensions,
	}
	if p.Notes != "" {
		pkg.Notes = pointer.To(p.Notes)
	}
	return pkg
}

func ToPackage(p dto.PackageInfo) entities.PackageInfo {
	return entities.PackageInfo{
		Type:       entities.PackageType(p.Type),
		WeightKg:   p.WeightKg,
		Dimensions: p.Dimensions,
		Notes:      pointer.Get(p.Notes),
	}
}

func RouteSegment(s entities.RouteSegment) dto.RouteSegment {
	return dto.RouteSegment{
		Index:         s.Index,
		Start:         Location(s.Start),
		End:           Location(s.End),
		DistanceKm:    s.DistanceKm,
		DurationMin:   s.DurationMin,
		EstimatedCost: s.EstimatedCost,
	}
}

func ToRouteSegments(segments []dto.RouteSegment) []entities.RouteSegment {
	legs := make([]entities.RouteSegment, 0, len(segments))
	for _, s := range segments {
		legs = append(legs, entities.RouteSegment{
			Index:         s.Index,
			Start:         ToLocation(s.Start),
			End:           ToLocation(s.End),
			DistanceKm:    s.DistanceKm,
			DurationMin:   s.DurationMin,
			EstimatedCost: s.EstimatedCost,
		})
	}
	return legs
}

func OptimizedRoute(r *entities.OptimizedRoute) dto.OptimizedRoute {
	segments := make([]dto.RouteSegment, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, RouteSegment(s))
	}

	return dto.OptimizedRoute{
		Addresses: r.Addresses,
		Segments:  segments,
		Summary: dto.RouteSummary{
			TotalDistanceKm:    r.Summary.TotalDistanceKm,
			TotalDurationMin:   r.Summary.TotalDurationMin,
			TotalEstimatedCost: r.Summary.TotalEstimatedCost,
			SegmentCount:       r.Summary.SegmentCount,
		},
	}
}

func TimeSlots(slots []entities.TimeSlot) *[]dto.TimeSlot {
	if len(slots) == 0 {
		return nil
	}
	out := make([]dto.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, dto.TimeSlot{From: slot.From, To: slot.To})
	}
	return &out
}

func ToTimeSlots(slots *[]dto.TimeSlot) []entities.TimeSlot {
	if slots == nil {
		return nil
	}
	out := make([]entities.TimeSlot, 0, len(*slots))
	for _, slot := range *slots {
		out = append(out, entities.TimeSlot{From: slot.From, To: slot.To})
	}
	return out
}

func Segment(s entities.Segment) dto.Segment {
	return dto.Segment{
		Id:                s.ID,
		DeliveryId:        s.DeliveryID,
		Index:             s.Index,
		Start:             Location(s.Start),
		End:               Location(s.End),
		DistanceKm:        s.DistanceKm,
		DurationMin:       s.DurationMin,
		EstimatedCost:     s.EstimatedCost,
		Status:            s.Status.String(),
		CourierId:         s.CourierID,
		ReplacesSegmentId: s.ReplacesSegmentID,
		UpdatedAt:         s.UpdatedAt,
	}
}

func Segments(segments []entities.Segment) []dto.Segment {
	out := make([]dto.Segment, 0, len(segments))
	for _, s := range segments {
		out = append(out, Segment(s))
	}
	return out
}

func Delivery(v *entities.DeliveryView) dto.Delivery {
	d := dto.Delivery{
		Id:                 v.Delivery.ID,
		ClientId:           v.Delivery.ClientID,
		Status:             v.Status.String(),
		Package:            Package(v.Delivery.Package),
		Urgency:            v.Delivery.Urgency.String(),
		PreferredTimeSlots: TimeSlots(v.Delivery.PreferredTimeSlots),
		Segments:           Segments(v.Segments),
		CreatedAt:          v.Delivery.CreatedAt,
	}
	if v.Delivery.SpecialInstructions != "" {
		d.SpecialInstructions = pointer.To(v.Delivery.SpecialInstructions)
	}
	return d
}

func AvailableSegments(available []entities.AvailableSegment) []dto.AvailableSegment {
	out := make([]dto.AvailableSegment, 0, len(available))
	for _, a := range available {
		out = append(out, dto.AvailableSegment{
			Segment:    Segment(a.Segment),
			DistanceKm: a.DistanceKm,
		})
	}
	return out
}

func Proposal(p entities.Proposal) dto.Proposal {
	return dto.Proposal{
		SegmentId:           p.SegmentID,
		CourierId:           p.CourierID,
		ProposedCost:        p.ProposedCost,
		ProposedDurationMin: p.ProposedDurationMin,
		SubmittedAt:         p.SubmittedAt,
	}
}

func Acceptance(a *entities.Acceptance) dto.Acceptance {
	rejected := make([]dto.Proposal, 0, len(a.Rejected))
	for _, p := range a.Rejected {
		rejected = append(rejected, Proposal(p))
	}

	return dto.Acceptance{
		Segment:  Segment(a.Segment),
		Accepted: Proposal(a.Accepted),
		Rejected: rejected,
	}
}

// HandoverEvent никогда не отдаёт код подтверждения.
func HandoverEvent(h entities.HandoverEvent) dto.HandoverEvent {
	return dto.HandoverEvent{
		Id:                  h.ID,
		DeliveryId:          h.DeliveryID,
		FromSegmentId:       h.FromSegmentID,
		ToSegmentId:         h.ToSegmentID,
		Location:            Location(h.Location),
		ConfirmedBySender:   h.ConfirmedBySender,
		ConfirmedByReceiver: h.ConfirmedByReceiver,
		CreatedAt:           h.CreatedAt,
		CompletedAt:         h.CompletedAt,
	}
}

func HandoverResult(r *entities.HandoverResult) dto.HandoverResult {
	return dto.HandoverResult{
		Handover:    HandoverEvent(r.Handover),
		FromSegment: Segment(r.FromSegment),
		ToSegment:   Segment(r.ToSegment),
	}
}

func ChatMessage(m *entities.ChatMessage) dto.ChatMessage {
	return dto.ChatMessage{
		Id:          m.ID,
		DeliveryId:  m.DeliveryID,
		SenderId:    m.SenderID,
		Content:     m.Content,
		MessageType: m.MessageType.String(),
		Timestamp:   m.Timestamp,
	}
}

func CourierPosition(p *entities.CourierPosition) dto.CourierPosition {
	return dto.CourierPosition{
		CourierId:    p.CourierID,
		Lat:          p.Coordinates.Lat,
		Lon:          p.Coordinates.Lon,
		Availability: p.Availability.String(),
		ReportedAt:   p.ReportedAt,
	}
}
