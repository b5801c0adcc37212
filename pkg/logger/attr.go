package logger

import (
	"log/slog"
	"os"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Service records the service name under the key "service".
func Service(name string) slog.Attr {
	return slog.String("service", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Region records a region name under the key "region".
func Region(name string) slog.Attr {
	return slog.String("region", name)
}

// Reason records why a decision was taken under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Cookie records a cookie name under the key "cookie".
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}

// Instance identifies the running process by listen port and, when it can be
// read, host name.
func Instance(port int) []slog.Attr {
	attrs := []slog.Attr{slog.Int("port", port)}
	if host, err := os.Hostname(); err == nil {
		attrs = append(attrs, slog.String("host", host))
	}
	return attrs
}
