package logger

import (
	"log"

	log_model "detail-genius/models/log"
	"detail-genius/types"

	"gorm.io/gorm"
)

type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
	}
}

func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:       logEntry.Method,
			URL:          logEntry.URL,
			ClientIP:     logEntry.ClientIP,
			RequestBody:  logEntry.RequestBody,
			ResponseBody: logEntry.ResponseBody,
			StatusCode:   logEntry.StatusCode,
			LatencyMs:    logEntry.LatencyMs,
			CreatedAt:    logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert new log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.channel <- entry
}
