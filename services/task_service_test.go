package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"collabspace/models"
	"collabspace/repository"

	"github.com/google/uuid"
)

func TestCreateTask_Defaults(t *testing.T) {
	store := newTestStore(t)
	events := &recordingPublisher{}
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, events)
	ctx := context.Background()

	project := mustCreateProject(t, projects, "Apollo")
	assignee := uuid.New()
	due := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	task, err := tasks.CreateTask(ctx, models.TaskRequest{
		Title:      "Design",
		ProjectID:  &project.ID,
		AssigneeID: &assignee,
		DueDate:    &due,
		Status:     models.TaskStatusDone,
	}, uuid.New())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Status != models.TaskStatusToDo {
		t.Fatalf("new task must start TO_DO; got %s", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Fatalf("expected default MEDIUM priority; got %s", task.Priority)
	}
	if task.ProjectID != project.ID || task.ProjectName != "Apollo" {
		t.Fatalf("unexpected project fields %s %q", task.ProjectID, task.ProjectName)
	}
	if task.AssigneeID == nil || *task.AssigneeID != assignee {
		t.Fatalf("assignee not stored")
	}
	if task.Subtasks == nil || len(task.Subtasks) != 0 {
		t.Fatalf("expected empty subtasks; got %v", task.Subtasks)
	}
	if task.LinkedWorkItems == nil || len(task.LinkedWorkItems) != 0 {
		t.Fatalf("expected empty linked work items; got %v", task.LinkedWorkItems)
	}
	if got := events.types(); !reflect.DeepEqual(got, []models.TaskEventType{models.EventTaskCreated}) {
		t.Fatalf("unexpected events %v", got)
	}
}

func TestCreateTask_MissingProject(t *testing.T) {
	store := newTestStore(t)
	tasks := NewTaskService(store, nil)
	missing := uuid.New()

	_, err := tasks.CreateTask(context.Background(), models.TaskRequest{Title: "x", ProjectID: &missing}, uuid.New())
	var notFound *repository.NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "Project" {
		t.Fatalf("expected Project not found; got %v", err)
	}
}

func TestCreateTask_WithLinkedTasks(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, nil)
	ctx := context.Background()

	project := mustCreateProject(t, projects, "Apollo")
	target := mustCreateTask(t, tasks, project.ID, "target")

	task, err := tasks.CreateTask(ctx, models.TaskRequest{
		Title:         "source",
		ProjectID:     &project.ID,
		LinkedTaskIDs: []uuid.UUID{target.ID, target.ID},
	}, uuid.New())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if len(task.LinkedWorkItems) != 1 || task.LinkedWorkItems[0].ID != target.ID {
		t.Fatalf("expected one link to target; got %+v", task.LinkedWorkItems)
	}

	missing := uuid.New()
	_, err = tasks.CreateTask(ctx, models.TaskRequest{
		Title:         "broken",
		ProjectID:     &project.ID,
		LinkedTaskIDs: []uuid.UUID{missing},
	}, uuid.New())
	var notFound *repository.NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "Linked task" {
		t.Fatalf("expected Linked task not found; got %v", err)
	}

	all, err := tasks.GetTasksByProject(ctx, project.ID, nil)
	if err != nil {
		t.Fatalf("GetTasksByProject: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("failed create must roll back; got %d tasks", len(all))
	}
}

func TestGetTasksByProject_AssigneeFilter(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, nil)
	ctx := context.Background()

	p1 := mustCreateProject(t, projects, "one")
	p2 := mustCreateProject(t, projects, "two")
	alice := uuid.New()

	for _, req := range []models.TaskRequest{
		{Title: "a1", ProjectID: &p1.ID, AssigneeID: &alice},
		{Title: "a2", ProjectID: &p1.ID},
		{Title: "a3", ProjectID: &p2.ID, AssigneeID: &alice},
	} {
		if _, err := tasks.CreateTask(ctx, req, uuid.New()); err != nil {
			t.Fatalf("CreateTask(%s): %v", req.Title, err)
		}
	}

	inP1, err := tasks.GetTasksByProject(ctx, p1.ID, nil)
	if err != nil || len(inP1) != 2 {
		t.Fatalf("expected 2 tasks in p1; got %d (%v)", len(inP1), err)
	}

	mine, err := tasks.GetTasksByProject(ctx, p1.ID, &alice)
	if err != nil || len(mine) != 1 || mine[0].Title != "a1" {
		t.Fatalf("assignee filter failed: %+v (%v)", mine, err)
	}

	everywhere, err := tasks.GetTasksByAssignee(ctx, alice)
	if err != nil || len(everywhere) != 2 {
		t.Fatalf("expected 2 tasks for assignee; got %d (%v)", len(everywhere), err)
	}

	none, err := tasks.GetTasksByProject(ctx, uuid.New(), nil)
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("unknown project must give empty list; got %v (%v)", none, err)
	}
}

func TestUpdateTask_Partial(t *testing.T) {
	store := newTestStore(t)
	events := &recordingPublisher{}
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, events)
	ctx := context.Background()

	project := mustCreateProject(t, projects, "Apollo")
	task := mustCreateTask(t, tasks, project.ID, "Design")
	if _, err := tasks.UpdateTaskStatus(ctx, task.ID, models.TaskStatusInReview); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}

	title := "Design v2"
	priority := models.PriorityHigh
	due := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	req := models.TaskUpdateRequest{
		Title:    &title,
		Priority: &priority,
		DueDate:  &due,
	}
	updated, err := tasks.UpdateTask(ctx, task.ID, req, uuid.New())
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "Design v2" || updated.Priority != models.PriorityHigh {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.Description != task.Description || updated.AssigneeID != nil {
		t.Fatalf("absent fields changed: %+v", updated)
	}
	if updated.Status != models.TaskStatusInReview {
		t.Fatalf("update must not touch status; got %s", updated.Status)
	}

	again, err := tasks.UpdateTask(ctx, task.ID, req, uuid.New())
	if err != nil {
		t.Fatalf("UpdateTask (repeat): %v", err)
	}
	stored, err := tasks.GetTaskByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTaskByID: %v", err)
	}
	for _, got := range []*models.TaskResponse{again, stored} {
		if got.Title != updated.Title || got.Description != updated.Description ||
			got.Priority != updated.Priority || got.Status != updated.Status ||
			got.ProjectID != updated.ProjectID || got.AssigneeID != nil {
			t.Fatalf("repeating the update changed the task: %+v vs %+v", got, updated)
		}
		if got.DueDate == nil || !got.DueDate.Equal(*updated.DueDate) {
			t.Fatalf("due date changed: %v vs %v", got.DueDate, updated.DueDate)
		}
	}

	if _, err := tasks.UpdateTask(ctx, uuid.New(), models.TaskUpdateRequest{Title: &title}, uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found; got %v", err)
	}

	want := []models.TaskEventType{models.EventTaskCreated, models.EventTaskStatusChanged, models.EventTaskUpdated, models.EventTaskUpdated}
	if got := events.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v; want %v", got, want)
	}
}

func TestUpdateTaskStatus_AnyTransition(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, nil)
	ctx := context.Background()

	project := mustCreateProject(t, projects, "Apollo")
	task := mustCreateTask(t, tasks, project.ID, "Design")

	for _, status := range []models.TaskStatus{
		models.TaskStatusDone,
		models.TaskStatusToDo,
		models.TaskStatusInProgress,
		models.TaskStatusInProgress,
	} {
		updated, err := tasks.UpdateTaskStatus(ctx, task.ID, status)
		if err != nil {
			t.Fatalf("UpdateTaskStatus(%s): %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected %s; got %s", status, updated.Status)
		}
	}

	fetched, err := tasks.GetTaskByID(ctx, task.ID)
	if err != nil || fetched.Status != models.TaskStatusInProgress {
		t.Fatalf("status not persisted: %+v (%v)", fetched, err)
	}

	if _, err := tasks.UpdateTaskStatus(ctx, uuid.New(), models.TaskStatusDone); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found; got %v", err)
	}
}

func TestSubtasks(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, nil)
	ctx := context.Background()

	project := mustCreateProject(t, projects, "Apollo")
	task := mustCreateTask(t, tasks, project.ID, "Design")

	first, err := tasks.AddSubtask(ctx, task.ID, models.SubtaskRequest{Title: "wireframes"})
	if err != nil {
		t.Fatalf("AddSubtask: %v", err)
	}
	if first.Status != models.TaskStatusToDo || first.ParentTaskID != task.ID {
		t.Fatalf("unexpected subtask %+v", first)
	}
	if _, err := tasks.AddSubtask(ctx, task.ID, models.SubtaskRequest{Title: "mockups"}); err != nil {
		t.Fatalf("AddSubtask: %v", err)
	}

	subtasks, err := tasks.GetSubtasksByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetSubtasksByTask: %v", err)
	}
	if len(subtasks) != 2 || subtasks[0].Title != "wireframes" || subtasks[1].Title != "mockups" {
		t.Fatalf("unexpected subtasks %+v", subtasks)
	}

	fetched, err := tasks.GetTaskByID(ctx, task.ID)
	if err != nil || len(fetched.Subtasks) != 2 {
		t.Fatalf("task response must embed subtasks: %+v (%v)", fetched, err)
	}

	missing := uuid.New()
	_, err = tasks.AddSubtask(ctx, missing, models.SubtaskRequest{Title: "orphan"})
	var notFound *repository.NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "Parent task" || notFound.ID != missing {
		t.Fatalf("expected Parent task not found; got %v", err)
	}

	if err := tasks.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	_, err = tasks.AddSubtask(ctx, task.ID, models.SubtaskRequest{Title: "late"})
	if !errors.As(err, &notFound) || notFound.Entity != "Parent task" || notFound.ID != task.ID {
		t.Fatalf("subtask under a deleted parent: expected Parent task not found; got %v", err)
	}

	empty, err := tasks.GetSubtasksByTask(ctx, missing)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("unknown parent must give empty list; got %v (%v)", empty, err)
	}
}

func TestLinkedWorkItems_OneWayAndIdempotent(t *testing.T) {
	store := newTestStore(t)
	events := &recordingPublisher{}
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, events)
	ctx := context.Background()

	project := mustCreateProject(t, projects, "Apollo")
	a := mustCreateTask(t, tasks, project.ID, "a")
	b := mustCreateTask(t, tasks, project.ID, "b")

	for i := 0; i < 2; i++ {
		linked, err := tasks.AddLinkedWorkItem(ctx, a.ID, b.ID)
		if err != nil {
			t.Fatalf("AddLinkedWorkItem #%d: %v", i, err)
		}
		if len(linked.LinkedWorkItems) != 1 {
			t.Fatalf("expected exactly one link; got %+v", linked.LinkedWorkItems)
		}
		item := linked.LinkedWorkItems[0]
		if item.ID != b.ID || item.Title != "b" || item.Status != string(models.TaskStatusToDo) {
			t.Fatalf("unexpected link summary %+v", item)
		}
	}

	target, err := tasks.GetTaskByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetTaskByID: %v", err)
	}
	if len(target.LinkedWorkItems) != 0 {
		t.Fatalf("link must be one-way; target has %+v", target.LinkedWorkItems)
	}

	if _, err := tasks.AddLinkedWorkItem(ctx, a.ID, uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for missing target; got %v", err)
	}
	if _, err := tasks.AddLinkedWorkItem(ctx, uuid.New(), b.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for missing source; got %v", err)
	}

	unlinked, err := tasks.RemoveLinkedWorkItem(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("RemoveLinkedWorkItem: %v", err)
	}
	if len(unlinked.LinkedWorkItems) != 0 {
		t.Fatalf("link not removed: %+v", unlinked.LinkedWorkItems)
	}
	if _, err := tasks.RemoveLinkedWorkItem(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("removing an absent link: %v", err)
	}

	want := []models.TaskEventType{
		models.EventTaskCreated,
		models.EventTaskCreated,
		models.EventLinkAdded,
		models.EventLinkRemoved,
	}
	if got := events.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v; want %v", got, want)
	}
}

func TestDeleteTask_RemovesSubtasksAndLinks(t *testing.T) {
	store := newTestStore(t)
	events := &recordingPublisher{}
	projects := NewProjectService(store, nil)
	tasks := NewTaskService(store, events)
	ctx := context.Background()

	project := mustCreateProject(t, projects, "Apollo")
	a := mustCreateTask(t, tasks, project.ID, "a")
	b := mustCreateTask(t, tasks, project.ID, "b")
	c := mustCreateTask(t, tasks, project.ID, "c")

	if _, err := tasks.AddSubtask(ctx, b.ID, models.SubtaskRequest{Title: "sub"}); err != nil {
		t.Fatalf("AddSubtask: %v", err)
	}
	if _, err := tasks.AddLinkedWorkItem(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("AddLinkedWorkItem: %v", err)
	}
	if _, err := tasks.AddLinkedWorkItem(ctx, b.ID, c.ID); err != nil {
		t.Fatalf("AddLinkedWorkItem: %v", err)
	}

	if err := tasks.DeleteTask(ctx, b.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	if _, err := tasks.GetTaskByID(ctx, b.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("task still present: %v", err)
	}
	subtasks, err := tasks.GetSubtasksByTask(ctx, b.ID)
	if err != nil || len(subtasks) != 0 {
		t.Fatalf("subtasks not removed: %v (%v)", subtasks, err)
	}
	source, err := tasks.GetTaskByID(ctx, a.ID)
	if err != nil || len(source.LinkedWorkItems) != 0 {
		t.Fatalf("incoming link not removed: %+v (%v)", source, err)
	}
	links, err := store.Links.FindByTaskID(ctx, b.ID)
	if err != nil || len(links) != 0 {
		t.Fatalf("outgoing links not removed: %v (%v)", links, err)
	}
	if _, err := tasks.GetTaskByID(ctx, c.ID); err != nil {
		t.Fatalf("unrelated task removed: %v", err)
	}

	if err := tasks.DeleteTask(ctx, b.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: expected not found; got %v", err)
	}

	got := events.types()
	if got[len(got)-1] != models.EventTaskDeleted {
		t.Fatalf("expected trailing task.deleted; got %v", got)
	}
}
