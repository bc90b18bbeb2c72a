package profiling

import (
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"
	"github.com/rs/zerolog"
)

// SetupProfiling starts continuous profiling against a pyroscope server.
// The returned profiler must be stopped on exit.
func SetupProfiling(serverAddress string, logger zerolog.Logger) (*pyroscope.Profiler, error) {
	runtime.SetMutexProfileFraction(5)
	runtime.SetBlockProfileRate(5)
	logger.Info().Str("server", serverAddress).Msg("starting pyroscope")
	host, _ := os.Hostname()
	return pyroscope.Start(pyroscope.Config{
		ApplicationName: "thumbshelf.golang.app",
		ServerAddress:   serverAddress,
		Logger:          pyroscopeLogger{logger},
		Tags:            map[string]string{"hostname": host},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
}

// pyroscopeLogger routes profiler messages into the application log.
type pyroscopeLogger struct {
	zerolog.Logger
}

func (l pyroscopeLogger) Infof(format string, args ...interface{}) {
	l.Info().Msgf(format, args...)
}

func (l pyroscopeLogger) Debugf(format string, args ...interface{}) {
	l.Debug().Msgf(format, args...)
}

func (l pyroscopeLogger) Errorf(format string, args ...interface{}) {
	l.Error().Msgf(format, args...)
}
