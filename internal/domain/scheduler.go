package domain

import (
	"time"
)

// SysScheduler is one registered background task. Enabled rows are picked up
// by the application's scheduler loop when their NextRunAt has passed.
type SysScheduler struct {
	ID          int64     `json:"id,string" form:"id"`
	Name        string    `gorm:"index" json:"name" form:"name"`
	TaskType    string    `json:"task_type" form:"task_type"`
	Interval    int       `json:"interval" form:"interval"` // seconds
	Status      string    `json:"status" form:"status"`
	LastRunAt   time.Time `json:"last_run_at"`
	NextRunAt   time.Time `json:"next_run_at"`
	LastResult  string    `json:"last_result" form:"last_result"`
	LastMessage string    `json:"last_message" form:"last_message"`
	Remark      string    `json:"remark" form:"remark"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysScheduler) TableName() string {
	return "sys_scheduler"
}
