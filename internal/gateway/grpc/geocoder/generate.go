package geocoder

//go:generate go run github.com/yoheimuta/protolint/cmd/protolint lint ../../../../api/geocoder/v1
