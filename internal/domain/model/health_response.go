package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "Healthy"
	StatusUnhealthy HealthStatus = "Unhealthy"
)

// ComponentHealthStatus represents the health check result of a single application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthReport aggregates the results of every registered health component
type HealthReport struct {
	Status        HealthStatus                     `json:"status"`
	TotalDuration string                           `json:"totalDuration"`
	Components    map[string]ComponentHealthStatus `json:"components"`
}

func (report HealthReport) Healthy() bool {
	return report.Status == StatusHealthy
}

func Healthy(message string) ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusHealthy,
		Details: map[string]string{"message": message},
	}
}

func Unhealthy(err error) ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusUnhealthy,
		Details: map[string]string{"message": err.Error()},
	}
}
