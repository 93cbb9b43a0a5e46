package messages

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitLogger configures the process wide logger used by ConsoleLog
func InitLogger(level string, pretty bool) {
	initLogger(os.Stderr, level, pretty)
}

func initLogger(out io.Writer, level string, pretty bool) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(level); err == nil && parsed != zerolog.NoLevel {
		lvl = parsed
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		out = zerolog.ConsoleWriter{Out: out, NoColor: noColor}
	}
	logger = zerolog.New(out).With().Timestamp().Logger()
}

func NewDictionaryMessage(level DictionaryLogLevel, component string, err error, formatString string, additionalInfo ...interface{}) *DictionaryMessage {
	return &DictionaryMessage{
		LogLevel:       level,
		Component:      component,
		Err:            err,
		FormatString:   formatString,
		AdditionalInfo: additionalInfo,
	}
}

// FromError returns err as a dictionary message, wrapping foreign errors at ERROR level
func FromError(err error) *DictionaryMessage {
	if err == nil {
		return nil
	}
	if dictMsg, ok := err.(*DictionaryMessage); ok {
		return dictMsg
	}
	return NewDictionaryMessage(LOG_LEVEL_ERROR, "", err, "")
}

func (dictMsg *DictionaryMessage) ConsoleLog() {
	switch dictMsg.LogLevel {
	case LOG_LEVEL_INFO, LOG_LEVEL_SUCCESS, LOG_LEVEL_WARNING:
		dictMsg.formatMessage()
	case LOG_LEVEL_ERROR:
		dictMsg.formatError()
	}
}

// Fatal logs the message and exits the process
func (dictMsg *DictionaryMessage) Fatal() {
	dictMsg.formatError()
	os.Exit(1)
}

func (dictMsg *DictionaryMessage) Message() string {
	if dictMsg.FormatString == "" {
		return ""
	}
	return fmt.Sprintf(dictMsg.FormatString, dictMsg.AdditionalInfo...)
}

// Error renders as [COMPONENT] custom_message: error_message
func (dictMsg *DictionaryMessage) Error() string {
	msg := dictMsg.Message()
	if dictMsg.Component != "" {
		msg = fmt.Sprintf("[%s] %s", dictMsg.Component, msg)
	}
	if dictMsg.Err != nil {
		if msg == "" {
			return dictMsg.Err.Error()
		}
		return fmt.Sprintf("%s: %v", msg, dictMsg.Err)
	}
	return msg
}

func (dictMsg *DictionaryMessage) Unwrap() error {
	return dictMsg.Err
}

func (dictMsg *DictionaryMessage) formatMessage() {
	var event *zerolog.Event
	switch dictMsg.LogLevel {
	case LOG_LEVEL_WARNING:
		event = logger.Warn()
	case LOG_LEVEL_SUCCESS:
		event = logger.Info().Bool("success", true)
	default:
		event = logger.Info()
	}
	if dictMsg.Component != "" {
		event = event.Str("component", dictMsg.Component)
	}
	event.Msg(dictMsg.Message())
}

func (dictMsg *DictionaryMessage) formatError() {
	event := logger.Error().Stack()
	if dictMsg.Component != "" {
		event = event.Str("component", dictMsg.Component)
	}
	if dictMsg.Err != nil {
		event = event.Err(dictMsg.Err)
	}
	event.Msg(dictMsg.Message())
}
