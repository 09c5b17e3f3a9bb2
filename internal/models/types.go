package models

import (
	"time"
)

// HealthCheck represents system health status
type HealthCheck struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
}

// NewHealthCheck reports a healthy service that started at startedAt
func NewHealthCheck(service, version string, startedAt time.Time) *HealthCheck {
	now := time.Now().UTC()
	return &HealthCheck{
		Status:    "healthy",
		Service:   service,
		Version:   version,
		Timestamp: now,
		Uptime:    now.Sub(startedAt).Round(time.Second).String(),
	}
}
