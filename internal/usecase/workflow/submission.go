package workflow

import (
	"context"
	"time"
)

// Submission одна принятая отправка формы.
type Submission struct {
	Number    int
	StartedAt time.Time

	done   chan struct{}
	result string
	err    error
}

func newSubmission(number int) *Submission {
	return &Submission{
		Number:    number,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// Done закрывается после завершения генерации и отправки уведомления.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Result текст рекомендаций; имеет смысл после Done.
func (s *Submission) Result() string {
	<-s.done
	return s.result
}

// Err ошибка генерации; имеет смысл после Done.
func (s *Submission) Err() error {
	<-s.done
	return s.err
}

// Wait ждёт завершения генерации или отмены ctx. Отмена ctx не отменяет генерацию.
func (s *Submission) Wait(ctx context.Context) (string, error) {
	select {
	case <-s.done:
		return s.result, s.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Submission) finish(result string, err error) {
	s.result = result
	s.err = err
	close(s.done)
}
