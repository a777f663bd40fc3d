package httpclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// newChatServer runs an in-memory chat endpoint so the demo has something
// real to call without leaving the process.
func newChatServer() *httptest.Server {
	var (
		mu       sync.Mutex
		messages []ChatMessage
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /messages", func(w http.ResponseWriter, r *http.Request) {
		var msg ChatMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		messages = append(messages, msg)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(msg)
	})
	mux.HandleFunc("GET /messages", func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		mu.Lock()
		out := make([]ChatMessage, 0, len(messages))
		for _, m := range messages {
			if from == "" || m.From == from {
				out = append(out, m)
			}
		}
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
	return httptest.NewServer(mux)
}

// newWeatherServer serves canned readings keyed by city.
func newWeatherServer() *httptest.Server {
	readings := map[string]WeatherReading{
		"lisbon": {City: "lisbon", TempC: 21.5, Conditions: "sunny", Humidity: 55},
		"bergen": {City: "bergen", TempC: 9.0, Conditions: "rain", Humidity: 90},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /weather", func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("city")
		reading, ok := readings[city]
		if !ok {
			http.Error(w, "unknown city "+city, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reading)
	})
	return httptest.NewServer(mux)
}
