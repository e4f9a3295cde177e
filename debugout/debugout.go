/*
Package debugout turns GL debug output messages into log records.
*/
package debugout

import (
	"context"
	"log/slog"
)

// GL_KHR_debug enumerants.
const (
	sourceAPI            = 0x8246
	sourceWindowSystem   = 0x8247
	sourceShaderCompiler = 0x8248
	sourceThirdParty     = 0x8249
	sourceApplication    = 0x824A
	sourceOther          = 0x824B

	typeError              = 0x824C
	typeDeprecatedBehavior = 0x824D
	typeUndefinedBehavior  = 0x824E
	typePortability        = 0x824F
	typePerformance        = 0x8250
	typeOther              = 0x8251
	typeMarker             = 0x8268
	typePushGroup          = 0x8269
	typePopGroup           = 0x826A

	severityNotification = 0x826B
	severityHigh         = 0x9146
	severityMedium       = 0x9147
	severityLow          = 0x9148
)

var sourceNames = map[uint32]string{
	sourceAPI:            "api",
	sourceWindowSystem:   "window system",
	sourceShaderCompiler: "shader compiler",
	sourceThirdParty:     "third party",
	sourceApplication:    "application",
	sourceOther:          "other",
}

var typeNames = map[uint32]string{
	typeError:              "error",
	typeDeprecatedBehavior: "deprecated behavior",
	typeUndefinedBehavior:  "undefined behavior",
	typePortability:        "portability",
	typePerformance:        "performance",
	typeOther:              "other",
	typeMarker:             "marker",
	typePushGroup:          "push group",
	typePopGroup:           "pop group",
}

func name(names map[uint32]string, value uint32) string {
	if n, ok := names[value]; ok {
		return n
	}
	return "unknown"
}

// Level maps a GL debug message severity to a log level.
func Level(severity uint32) slog.Level {
	switch severity {
	case severityHigh:
		return slog.LevelError
	case severityMedium:
		return slog.LevelWarn
	case severityLow:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Message is a single message from the GL debug output.
type Message struct {
	Source, Type, ID, Severity uint32
	Text                       string
}

// Log writes m to l.
func (m Message) Log(l *slog.Logger) {
	l.Log(context.Background(), Level(m.Severity), m.Text,
		"source", name(sourceNames, m.Source),
		"type", name(typeNames, m.Type),
		"id", m.ID)
}
