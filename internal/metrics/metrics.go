// SPDX-License-Identifier: MIT
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Descriptor metrics
	descriptorReloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motif_descriptor_reloads_total",
		Help: "Total number of successful descriptor reloads",
	})

	descriptorReloadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motif_descriptor_reload_failures_total",
		Help: "Total number of descriptor reload failures",
	})

	descriptorValidationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motif_descriptor_validation_errors_total",
		Help: "Total number of descriptor validation errors",
	})

	// Render metrics
	renderJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motif_render_jobs_total",
		Help: "Render jobs by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	renderFramesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motif_render_frames_total",
		Help: "Total number of audio frames rendered",
	})

	renderDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "motif_render_duration_seconds",
		Help:    "Wall-clock time spent rendering a score",
		Buckets: prometheus.DefBuckets,
	})

	// Synth metrics
	voiceStealsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motif_voice_steals_total",
		Help: "Total number of voices stolen at polyphony capacity",
	})
)

func DescriptorReloaded()         { descriptorReloadsTotal.Inc() }
func DescriptorReloadFailed()     { descriptorReloadFailuresTotal.Inc() }
func DescriptorValidationFailed() { descriptorValidationErrorsTotal.Inc() }

func RenderCompleted(frames int, elapsed time.Duration) {
	renderJobsTotal.WithLabelValues("success").Inc()
	renderFramesTotal.Add(float64(frames))
	renderDurationSeconds.Observe(elapsed.Seconds())
}

func RenderFailed() { renderJobsTotal.WithLabelValues("failure").Inc() }

func VoiceStolen() { voiceStealsTotal.Inc() }
