package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu       sync.RWMutex
	instance *zap.SugaredLogger = nil
)

// Initialize - инициализирует синглтон логера с необходимым уровнем логирования.
func Initialize(level string) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	// создаём новую конфигурацию логера
	cfg := zap.NewProductionConfig()
	// устанавливаем уровень
	cfg.Level = lvl
	// создаём логер на основе конфигурации
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	// устанавливаем синглтон
	mu.Lock()
	instance = logger.Sugar()
	mu.Unlock()
	return nil
}

// Get - метод получения объекта логгера из синглтона
func Get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - метод синхронизации буфферов
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug - обертка над методом логирования уровня Debug, далее пары ключ-значение
func Debug(msg string, keysAndValues ...interface{}) {
	Get().Debugw(msg, keysAndValues...)
}

// Info - обертка над методом логирования уровня Info
func Info(msg string, keysAndValues ...interface{}) {
	Get().Infow(msg, keysAndValues...)
}

// Warn - обертка над методом логирования уровня Warn
func Warn(msg string, keysAndValues ...interface{}) {
	Get().Warnw(msg, keysAndValues...)
}

// Error - обертка над методом логирования уровня Error
func Error(msg string, keysAndValues ...interface{}) {
	Get().Errorw(msg, keysAndValues...)
}

// Panic - обертка над методом логирования уровня Panic
func Panic(msg string, keysAndValues ...interface{}) {
	Get().Panicw(msg, keysAndValues...)
}
