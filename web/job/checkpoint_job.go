package job

import (
	"microblog/database"
	"microblog/logger"

	"gorm.io/gorm"
)

// CheckpointJob periodically flushes the SQLite WAL into the main database
// file so crash recovery never replays a long journal.
type CheckpointJob struct {
	db *gorm.DB
}

func NewCheckpointJob(db *gorm.DB) *CheckpointJob {
	return &CheckpointJob{db: db}
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(j.db); err != nil {
		logger.Warning("wal checkpoint job err:", err)
	}
}
