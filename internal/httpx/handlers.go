package httpx

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/you/go-ride-agent/internal/providers"
	"github.com/you/go-ride-agent/internal/render"
	"github.com/you/go-ride-agent/internal/service"
)

type runRequest struct {
	Pickup      string `json:"pickup"`
	Dropoff     string `json:"dropoff"`
	VehicleNeed string `json:"vehicle_need"`
}

func (r runRequest) toRideRequest() providers.RideRequest {
	need := strings.TrimSpace(r.VehicleNeed)
	if need == "" {
		need = "cheapest"
	}
	return providers.RideRequest{
		Pickup:      strings.TrimSpace(r.Pickup),
		Dropoff:     strings.TrimSpace(r.Dropoff),
		VehicleNeed: need,
	}
}

// HomeHandler serves the demo form page.
func HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(homeHTML))
	}
}

// RunTextHandler accepts the trip either as a JSON POST body or as GET
// query parameters and replies with the plain-text transcript.
func RunTextHandler(svc *service.RideService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req runRequest
		switch r.Method {
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad json", http.StatusBadRequest)
				return
			}
		case http.MethodGet:
			q := r.URL.Query()
			req = runRequest{
				Pickup:      q.Get("pickup"),
				Dropoff:     q.Get("dropoff"),
				VehicleNeed: q.Get("vehicle_need"),
			}
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ride := req.toRideRequest()
		if ride.Pickup == "" || ride.Dropoff == "" {
			http.Error(w, "pickup and dropoff are required", http.StatusBadRequest)
			return
		}

		res, err := svc.BestRide(r.Context(), ride, true)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(render.Plain(res)))
	}
}

// rideFromQuery reads the subscription addressing. Places are free text,
// so they travel as query parameters rather than path segments.
func rideFromQuery(r *http.Request) (providers.RideRequest, bool) {
	q := r.URL.Query()
	req := runRequest{
		Pickup:      q.Get("pickup"),
		Dropoff:     q.Get("dropoff"),
		VehicleNeed: q.Get("vehicle_need"),
	}
	ride := req.toRideRequest()
	return ride, ride.Pickup != "" && ride.Dropoff != ""
}

// SubscribeSSEHandler streams the aggregation result on a fixed interval.
func SubscribeSSEHandler(svc *service.RideService, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ride, ok := rideFromQuery(r)
		if !ok {
			http.Error(w, "use /sse?pickup=...&dropoff=...&vehicle_need=...", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		updateTick := time.NewTicker(interval)
		defer updateTick.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				log.Println("SSE client closed")
				return

			case <-updateTick.C:
				res, err := svc.BestRide(ctx, ride, true)
				if err != nil {
					fmt.Fprintf(w, "event: error\ndata: %q\n\n", err.Error())
					flusher.Flush()
					return
				}
				payload, _ := json.Marshal(res)
				fmt.Fprintf(w, "event: update\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // in prod, restrict origin
	},
}

// SubscribeWSHandler pushes the aggregation result over a websocket,
// immediately and then on every interval tick.
func SubscribeWSHandler(svc *service.RideService, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ride, ok := rideFromQuery(r)
		if !ok {
			http.Error(w, "use /ws?pickup=...&dropoff=...&vehicle_need=...", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade error: %v", err)
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			res, err := svc.BestRide(ctx, ride, true)
			if err != nil {
				_ = conn.WriteJSON(map[string]string{"error": err.Error()})
				return
			}
			if err := conn.WriteJSON(res); err != nil {
				log.Printf("write error: %v", err)
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				continue
			}
		}
	}
}
