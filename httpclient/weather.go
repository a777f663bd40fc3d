package httpclient

import (
	"context"
	"net/url"
)

// WeatherReading is a plain value holder for one observation.
type WeatherReading struct {
	City       string  `json:"city"`
	TempC      float64 `json:"temp_c"`
	Conditions string  `json:"conditions"`
	Humidity   int     `json:"humidity"`
}

// WeatherService is a pass-through over Client against a weather endpoint.
type WeatherService struct {
	client *Client
}

func NewWeatherService(base string) *WeatherService {
	return &WeatherService{client: New(base)}
}

// Current fetches the current reading for city.
func (s *WeatherService) Current(ctx context.Context, city string) (WeatherReading, error) {
	var reading WeatherReading
	err := s.client.GetJSON(ctx, "/weather?city="+url.QueryEscape(city), &reading)
	return reading, err
}

// CurrentAsync fetches the reading without blocking the caller; the returned
// channel delivers exactly one result.
func (s *WeatherService) CurrentAsync(ctx context.Context, city string) <-chan Result[WeatherReading] {
	return GetAsync[WeatherReading](ctx, s.client, "/weather?city="+url.QueryEscape(city))
}
