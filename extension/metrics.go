package extension

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bytesReadTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "io_streams_bytes_read_total",
		Help: "The number of bytes pulled through reader-backed input streams",
	})

	bytesWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "io_streams_bytes_written_total",
		Help: "The number of bytes pushed through writer-backed output streams",
	})

	openFilesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "io_streams_open_files",
		Help: "The number of files currently held open by scoped file helpers",
	})
)
