package myqueue

import (
	"context"
	"os"
	"sync"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newFakeQueue
	}
}

// FakeTaskQueue only remembers what was enqueued; nothing is dispatched.
type FakeTaskQueue struct {
	sync.Mutex
	Tasks []Task
}

func NewFakeTaskQueue() *FakeTaskQueue {
	return &FakeTaskQueue{
		Tasks: []Task{},
	}
}

func newFakeQueue(c context.Context) (TaskQueuer, func(), error) {
	return NewFakeTaskQueue(), func() {}, nil
}

func (q *FakeTaskQueue) Enqueue(c context.Context, task Task) error {
	q.Lock()
	defer q.Unlock()

	for _, t := range q.Tasks {
		if t.UID == task.UID {
			// de-duplicate like cloud-tasks does on task name
			return nil
		}
	}
	q.Tasks = append(q.Tasks, task)

	return nil
}

func (q *FakeTaskQueue) IsLastAttempt(c context.Context, taskUID string) (int32, int32) {
	return 0, 0
}
