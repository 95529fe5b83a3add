package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	Generation        int
	LastStep          time.Duration
	AveragePopulation float64
	Population        int
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one advanced generation
func (s *Stats) Update(generation int, population int, step time.Duration) {
	s.Generation = generation
	s.Population = population
	s.LastStep = step

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// GenerationsPerSecond is derived from the last step duration
func (s *Stats) GenerationsPerSecond() float64 {
	if s.LastStep <= 0 {
		return 0
	}
	return 1.0 / s.LastStep.Seconds()
}

// Runtime is the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// Label is the generation counter line shown under the board
func (s *Stats) Label() string {
	return fmt.Sprintf("Generation %d (%dms)", s.Generation, s.LastStep.Milliseconds())
}
