package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Platform records the classified client platform under "platform".
func Platform(platform string, mobile bool) slog.Attr {
	return Group("platform",
		slog.String("name", platform),
		slog.Bool("mobile", mobile),
	)
}

// Product records a catalogue slug under the key "product".
// If slug is empty, it returns an empty Attr.
func Product(slug string) slog.Attr {
	if slug == "" {
		return slog.Attr{}
	}
	return slog.String("product", slug)
}

// ARAction records the AR hand-off kind under the key "ar_action".
func ARAction(kind string) slog.Attr {
	return slog.String("ar_action", kind)
}

// Asset records a 3D asset path under the key "asset".
func Asset(path string) slog.Attr {
	return slog.String("asset", path)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
