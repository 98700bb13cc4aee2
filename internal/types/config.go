package types

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)

func (l LogLevel) String() string {
	return string(l)
}
