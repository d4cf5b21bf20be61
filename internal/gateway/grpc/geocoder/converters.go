package geocoder

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
	"relay/internal/entities"
)

const (
	fieldLat = "lat"
	fieldLon = "lon"
)

func toCoordinates(resp *structpb.Struct) (entities.Coordinates, error) {
	if resp == nil {
		return entities.Coordinates{}, fmt.Errorf("empty response")
	}

	lat, err := numberField(resp, fieldLat)
	if err != nil {
		return entities.Coordinates{}, err
	}
	lon, err := numberField(resp, fieldLon)
	if err != nil {
		return entities.Coordinates{}, err
	}

	return entities.Coordinates{Lat: lat, Lon: lon}, nil
}

func numberField(resp *structpb.Struct, name string) (float64, error) {
	value, ok := resp.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("response has no %q field", name)
	}
	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("response field %q is not a number", name)
	}
	return number.NumberValue, nil
}
