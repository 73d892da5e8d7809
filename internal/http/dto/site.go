package dto

import (
	"time"

	"github.com/0tsuro/SparkCar/internal/comparison"
	"github.com/0tsuro/SparkCar/internal/model"
)

type SlidesResponse struct {
	Slides             []model.SlidePair `json:"slides"`
	InitialPosition    float64           `json:"initial_position"`
	AutoplayIntervalMS int64             `json:"autoplay_interval_ms"`
}

func ToSlidesResponse(slides []model.SlidePair, interval time.Duration) SlidesResponse {
	return SlidesResponse{
		Slides:             slides,
		InitialPosition:    comparison.InitialPosition,
		AutoplayIntervalMS: interval.Milliseconds(),
	}
}

type PricingResponse struct {
	Plans []model.PricingPlan `json:"plans"`
}
