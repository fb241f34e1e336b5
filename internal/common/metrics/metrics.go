package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	ChecklistsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checklists_generated_total",
			Help: "Total number of checklists generated",
		},
		[]string{"goal"},
	)

	ChecklistItemsEmitted = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checklist_items_emitted",
			Help:    "Number of items emitted per generated checklist",
			Buckets: []float64{5, 10, 20, 30, 50, 75, 100},
		},
		[]string{"goal"},
	)
)
