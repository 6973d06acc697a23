package engine

import "shogi/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
