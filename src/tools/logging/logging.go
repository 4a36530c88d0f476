// Copyright 2016 NDP Systèmes. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/hexya-erp/ini2po/src/tools/exceptions"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// log is the base logger of the application
var log = &zapLogger{}

// A Logger writes logs to a handler
type Logger interface {
	// Panic logs a error level message then panics
	Panic(msg string, ctx ...interface{})
	// Error logs an error level message
	Error(msg string, ctx ...interface{})
	// Warn logs a warning level message
	Warn(msg string, ctx ...interface{})
	// Info logs an information level message
	Info(msg string, ctx ...interface{})
	// Debug logs a debug level message. This may be very verbose
	Debug(msg string, ctx ...interface{})
	// New returns a child logger with the given context
	New(ctx ...interface{}) Logger
	// Sync the logger cache
	Sync() error
}

// zapLogger is an implementation of logger using Uber's zap library.
//
// A zapLogger without zap backend stays silent until one of its
// ancestors is initialized.
type zapLogger struct {
	zap    *zap.SugaredLogger
	ctx    []interface{}
	parent *zapLogger
}

// Panic logs a error level message then panics
func (l *zapLogger) Panic(msg string, ctx ...interface{}) {
	if l.checkParent() {
		l.zap.Errorw(msg, ctx...)
	}
	panicData := msg + "\n"
	for i := 0; i+1 < len(ctx); i += 2 {
		panicData += fmt.Sprintf("\t%v : %v\n", ctx[i], ctx[i+1])
	}
	panic(panicData)
}

// Error logs an error level message
func (l *zapLogger) Error(msg string, ctx ...interface{}) {
	if l.checkParent() {
		l.zap.Errorw(msg, ctx...)
	}
}

// Warn logs a warning level message
func (l *zapLogger) Warn(msg string, ctx ...interface{}) {
	if l.checkParent() {
		l.zap.Warnw(msg, ctx...)
	}
}

// Info logs an information level message
func (l *zapLogger) Info(msg string, ctx ...interface{}) {
	if l.checkParent() {
		l.zap.Infow(msg, ctx...)
	}
}

// Debug logs a debug level message. This may be very verbose
func (l *zapLogger) Debug(msg string, ctx ...interface{}) {
	if l.checkParent() {
		l.zap.Debugw(msg, ctx...)
	}
}

// Sync the logger cache
func (l *zapLogger) Sync() error {
	if !l.checkParent() {
		return errors.New("syncing a non-initialized logger")
	}
	return l.zap.Sync()
}

// New returns a child logger with the given context
func (l *zapLogger) New(ctx ...interface{}) Logger {
	return &zapLogger{
		ctx:    ctx,
		parent: l,
	}
}

// checkParent returns true if this logger has a zap backend, creating it
// from its closest initialized ancestor if necessary.
func (l *zapLogger) checkParent() bool {
	if l.zap != nil {
		return true
	}
	if l.parent == nil || !l.parent.checkParent() {
		return false
	}
	l.zap = l.parent.zap.With(l.ctx...)
	return true
}

// Initialize starts the base logger from the LogLevel, LogFile, LogStdout
// and Debug settings.
//
// Nothing is written unless LogFile is set or LogStdout is true.
func Initialize() error {
	logConfig := zap.NewProductionConfig()
	if viper.GetBool("Debug") {
		logConfig = zap.NewDevelopmentConfig()
	}
	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(viper.GetString("LogLevel"))); err != nil {
		fmt.Printf("error while reading log level. Falling back to info. Error: %s\n", err.Error())
		logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logConfig.Level = logLevel

	var outputPaths []string
	if viper.GetBool("LogStdout") {
		outputPaths = append(outputPaths, "stdout")
	}
	if path := viper.GetString("LogFile"); path != "" {
		outputPaths = append(outputPaths, path)
	}
	logConfig.OutputPaths = outputPaths

	plainLog, err := logConfig.Build()
	if err != nil {
		return err
	}
	log.zap = plainLog.Sugar()
	log.Debug("Logger initialized", "level", logLevel.String())
	return nil
}

// GetLogger returns a context logger for the given module
func GetLogger(moduleName string) Logger {
	return log.New("module", moduleName)
}

// LogPanicData logs the given panic data and returns a UserError
// with the panic message and the stack trace.
func LogPanicData(panicData interface{}) error {
	msg := fmt.Sprintf("%v", panicData)
	log.Error("ini2po panicked", "msg", msg)
	return exceptions.UserError{
		Message: msg,
		Debug:   string(debug.Stack()),
	}
}
