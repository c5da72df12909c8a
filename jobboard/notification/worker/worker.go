package worker

import (
	"context"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/notification"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
)

// EmailWorker drains the email queue with a pool of goroutines.
// Failed deliveries go back through the delayed queue with backoff
// until maxAttempts is reached.
type EmailWorker struct {
	queue       notification.EmailQueue
	sender      notification.EmailSender
	workers     int
	maxAttempts int
}

// NewEmailWorker creates a new email worker pool
func NewEmailWorker(queue notification.EmailQueue, sender notification.EmailSender, workers, maxAttempts int) *EmailWorker {
	if workers <= 0 {
		workers = 2
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &EmailWorker{
		queue:       queue,
		sender:      sender,
		workers:     workers,
		maxAttempts: maxAttempts,
	}
}

// Start launches the worker pool and the delayed message mover.
// Workers run until ctx is cancelled.
func (w *EmailWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d email workers", w.workers)

	go w.moveDelayedMessages(ctx)

	for i := 0; i < w.workers; i++ {
		go w.processMessages(ctx, i)
	}
}

func (w *EmailWorker) processMessages(ctx context.Context, workerID int) {
	logx.Infof("Email worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Email worker %d stopping", workerID)
			return
		default:
			msg, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Email worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Nil message means the dequeue timed out on an empty queue
			if msg == nil {
				continue
			}

			w.deliver(ctx, workerID, msg)
		}
	}
}

func (w *EmailWorker) deliver(ctx context.Context, workerID int, msg *notification.EmailMessage) {
	if err := w.sender.Send(ctx, msg); err == nil {
		logx.Debugf("Email worker %d delivered mail to %s", workerID, msg.To)
		return
	} else {
		logx.Warnf("Email worker %d failed to deliver to %s (attempt %d): %v", workerID, msg.To, msg.Attempts+1, err)
	}

	msg.Attempts++
	if msg.Attempts >= w.maxAttempts {
		logx.Errorf("Dropping email to %s after %d attempts", msg.To, msg.Attempts)
		return
	}

	// Linear backoff between retries
	delay := time.Duration(msg.Attempts) * time.Minute
	if err := w.queue.EnqueueDelayed(ctx, msg, delay); err != nil {
		logx.Errorf("Failed to schedule email retry for %s: %v", msg.To, err)
	}
}

func (w *EmailWorker) moveDelayedMessages(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed emails: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed emails to ready queue", count)
			}
		}
	}
}
