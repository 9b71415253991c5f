package models

import "strings"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusArchived  ProjectStatus = "ARCHIVED"
)

// TaskStatus is shared by tasks and subtasks.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

var TaskStatuses = []TaskStatus{TaskStatusToDo, TaskStatusInProgress, TaskStatusInReview, TaskStatusDone}

func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseTaskStatus accepts the enum name in any case ("in_progress" == "IN_PROGRESS").
func ParseTaskStatus(value string) (TaskStatus, bool) {
	status := TaskStatus(strings.ToUpper(strings.TrimSpace(value)))
	return status, status.Valid()
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "LOW"
	PriorityMedium   TaskPriority = "MEDIUM"
	PriorityHigh     TaskPriority = "HIGH"
	PriorityCritical TaskPriority = "CRITICAL"
)

var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// ParseTaskPriority accepts the enum name in any case ("high" == "HIGH").
func ParseTaskPriority(value string) (TaskPriority, bool) {
	priority := TaskPriority(strings.ToUpper(strings.TrimSpace(value)))
	return priority, priority.Valid()
}

func (p TaskPriority) Valid() bool {
	for _, known := range TaskPriorities {
		if p == known {
			return true
		}
	}
	return false
}
