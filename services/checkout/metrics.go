package checkoutsrv

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var opsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "checkout",
	Name:      "operations_total",
	Help:      "Lifecycle operations by outcome code.",
}, []string{"op", "code"})
