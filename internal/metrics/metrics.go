package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики жизненного цикла задач. Метка class у failed - это
// remote_error / timeout / transport.
var (
	JobsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_jobs_started_total",
		Help: "Number of admitted media-to-presentation jobs.",
	})

	JobsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_jobs_completed_total",
		Help: "Number of jobs that delivered a presentation link.",
	})

	JobsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_jobs_failed_total",
		Help: "Number of jobs that ended with a remote-call failure.",
	}, []string{"class"})

	JobsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_jobs_cancelled_total",
		Help: "Number of jobs reset by the /cancel command.",
	})

	BusyRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_busy_rejections_total",
		Help: "Number of messages rejected because the user already has a job in flight.",
	})

	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_deliveries_total",
		Help: "Number of transcript/summary deliveries by form.",
	}, []string{"form"}) // inline | document
)
