package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	opsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_traffic_operations_total",
		Help: "Количество запросов к relay по операциям и коду ответа",
	}, []string{"op", "code"})

	opsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relay_traffic_operation_duration_seconds",
		Help:    "Длительность запроса к relay в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"op"})
)

const (
	defaultTarget = "http://localhost:8080"
	couriers      = 20
	centerLat     = 52.52
	centerLon     = 13.405
)

type location struct {
	Address *string `json:"address,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func randomLocation() location {
	return location{
		Lat: centerLat + (rand.Float64()*2-1)*0.1,
		Lon: centerLon + (rand.Float64()*2-1)*0.1,
	}
}

func call(client *http.Client, op, method, url string, body any) {
	start := time.Now()
	defer func() {
		opsDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			log.Printf("%s: marshal: %v", op, err)
			return
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		log.Printf("%s: request: %v", op, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		opsCounter.WithLabelValues(op, "error").Inc()
		return
	}
	_ = resp.Body.Close()
	opsCounter.WithLabelValues(op, fmt.Sprint(resp.StatusCode)).Inc()
}

func reportPositions(client *http.Client, target string) {
	for i := 0; i < couriers; i++ {
		loc := randomLocation()
		call(client, "report_position", http.MethodPost,
			fmt.Sprintf("%s/couriers/courier-%d/position", target, i),
			map[string]any{"lat": loc.Lat, "lon": loc.Lon, "availability": "available"},
		)
	}
}

func createDelivery(client *http.Client, target string) {
	a, b, c := randomLocation(), randomLocation(), randomLocation()
	segment := func(index int, start, end location) map[string]any {
		return map[string]any{
			"index":          index,
			"start":          start,
			"end":            end,
			"distance_km":    3 + rand.Float64()*5,
			"duration_min":   10 + rand.Intn(20),
			"estimated_cost": 8 + rand.Float64()*10,
		}
	}

	call(client, "create_delivery", http.MethodPost, target+"/deliveries", map[string]any{
		"client_id": fmt.Sprintf("client-%d", rand.Intn(100)),
		"package": map[string]any{
			"type":       "parcel",
			"dimensions": "30x20x10",
			"weight_kg":  1 + rand.Float64()*4,
		},
		"segments": []map[string]any{segment(0, a, b), segment(1, b, c)},
	})
}

func main() {
	target := os.Getenv("RELAY_URL")
	if target == "" {
		target = defaultTarget
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil) //nolint:errcheck,gosec

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		reportPositions(client, target)
		createDelivery(client, target)
		call(client, "list_available", http.MethodGet,
			fmt.Sprintf("%s/segments/available?lat=%f&lon=%f&radius_km=10", target, centerLat, centerLon), nil)
		time.Sleep(5 * time.Second)
	}
}
