/*
Package zapadapter implements tracing with the zap logger.

Tracing/logging is a cross cutting concern. Packages of this module trace
through the abstract tracer of package github.com/npillmayer/schuko/tracing.
Package zapadapter routes tracing output to a sugared logger of
"go.uber.org/zap". The adapter registers itself under key "zap"; a
configuration selects it with

    tracing.adapter = zap
    tracing.level   = Info

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zapadapter

import (
	"io"
	"os"
	"sync"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Key is the adapter key of this adapter.
const Key = "zap"

func init() {
	tracing.RegisterTraceAdapter(Key, GetAdapter(), false)
}

// Tracer is our adapter implementation which implements interface
// tracing.Trace, using a zap sugared logger.
type Tracer struct {
	mx    sync.RWMutex
	level zap.AtomicLevel
	log   *zap.SugaredLogger
}

// New creates a new Tracer instance writing to stderr.
func New() tracing.Trace {
	t := &Tracer{level: zap.NewAtomicLevelAt(zapcore.ErrorLevel)}
	t.SetOutput(os.Stderr)
	return t
}

// GetAdapter creates an adapter (i.e., factory for tracing.Trace) to
// be used to initialize (global) tracers.
func GetAdapter() tracing.Adapter {
	return New
}

// Configure installs the tracing adapter selected by key 'tracing.adapter'
// as the global trace selector and sets the trace level from key
// 'tracing.level'. The installed tracer is returned.
func Configure(conf schuko.Configuration) tracing.Trace {
	adapter := tracing.GetAdapterFromConfiguration(conf, "")
	sel := tracing.SelectorForAdapter(adapter)
	tracing.SetTraceSelector(sel)
	t := sel.Select("")
	if conf.IsSet("tracing.level") {
		t.SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("tracing.level")))
	}
	return t
}

// ----------------------------------------------------------------------------

// P is part of interface Trace
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &logentry{tracer: t, fields: []interface{}{key, val}}
}

// Debugf is part of interface Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	t.logger().Debugf(s, args...)
}

// Infof is part of interface Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	t.logger().Infof(s, args...)
}

// Errorf is part of interface Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.logger().Errorf(s, args...)
}

// SetTraceLevel is part of interface Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level.SetLevel(zapLevel(l))
}

// GetTraceLevel is part of interface Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	switch t.level.Level() {
	case zapcore.DebugLevel:
		return tracing.LevelDebug
	case zapcore.InfoLevel:
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// SetOutput is part of interface Trace
func (t *Tracer) SetOutput(writer io.Writer) {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(writer)), t.level)
	t.mx.Lock()
	defer t.mx.Unlock()
	t.log = zap.New(core).Sugar()
}

func (t *Tracer) logger() *zap.SugaredLogger {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.log
}

func zapLevel(l tracing.TraceLevel) zapcore.Level {
	switch l {
	case tracing.LevelDebug:
		return zapcore.DebugLevel
	case tracing.LevelInfo:
		return zapcore.InfoLevel
	}
	return zapcore.ErrorLevel
}

// ----------------------------------------------------------------------------

// logentry is a helper for tracing with context fields
type logentry struct { // will have to implement tracing.Trace
	tracer *Tracer       // tracer where this logentry will go
	fields []interface{} // key-value pairs
}

func (l *logentry) Debugf(s string, args ...interface{}) {
	l.tracer.logger().With(l.fields...).Debugf(s, args...)
}

func (l *logentry) Infof(s string, args ...interface{}) {
	l.tracer.logger().With(l.fields...).Infof(s, args...)
}

func (l *logentry) Errorf(s string, args ...interface{}) {
	l.tracer.logger().With(l.fields...).Errorf(s, args...)
}

func (l *logentry) P(key string, val interface{}) tracing.Trace {
	fields := append(append([]interface{}{}, l.fields...), key, val)
	return &logentry{tracer: l.tracer, fields: fields}
}

func (l *logentry) SetTraceLevel(lv tracing.TraceLevel) {
	l.tracer.SetTraceLevel(lv)
}

func (l *logentry) GetTraceLevel() tracing.TraceLevel {
	return l.tracer.GetTraceLevel()
}

func (l *logentry) SetOutput(writer io.Writer) {
	l.tracer.SetOutput(writer)
}
