/*
 * Copyright (C) 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */

package utilities

import (
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig controls log output destination and rotation.
type LoggerConfig struct {
	OutputType string `yaml:"outputType"`
	Filename   string `yaml:"fileName"`
	MaxSize    int    `yaml:"maxSize"` // megabytes
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"` // days
	Compress   bool   `yaml:"compress"`
}

// NewLogger builds a zap logger at the given level, writing JSON to stdout or,
// when loggerConfig selects file output, to a rotated log file.
func NewLogger(logLevel string, loggerConfig *LoggerConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, err
	}

	if loggerConfig != nil && loggerConfig.OutputType == "file" {
		return newFileLogger(level, loggerConfig), nil
	}
	return newConsoleLogger(level)
}

// newFileLogger configures a zap.Logger for file output using a
// lumberjack.Logger for log rotation.
func newFileLogger(level zap.AtomicLevel, loggerConfig *LoggerConfig) *zap.Logger {
	filename := loggerConfig.Filename
	if filename == "" {
		filename = "/var/log/hbase-bigtable-adapter/output.log"
	}
	maxAge := loggerConfig.MaxAge
	if maxAge == 0 {
		maxAge = 3 // days
	}
	maxBackups := loggerConfig.MaxBackups
	if maxBackups == 0 {
		maxBackups = 10
	}
	rotationalLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    loggerConfig.MaxSize, // megabytes, default 100MB
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		Compress:   loggerConfig.Compress,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotationalLogger),
		level,
	)
	return zap.New(core)
}

func newConsoleLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	config := zap.Config{
		Encoding:         "json",
		Level:            level,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			CallerKey:      "caller",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
	}
	return config.Build()
}
