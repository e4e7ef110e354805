package subm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/skolapp/backend/logger"
)

type sqsEvalJob struct {
	SubmID string `json:"subm_id"`
}

// sqsApi is the slice of the SQS client the queue uses. *sqs.Client
// satisfies it.
type sqsApi interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SqsQueue backs the evaluation queue with an SQS queue so pending jobs
// survive restarts.
type SqsQueue struct {
	client   sqsApi
	queueUrl string
}

func NewSqsQueue(client sqsApi, queueUrl string) *SqsQueue {
	return &SqsQueue{client: client, queueUrl: queueUrl}
}

func (q *SqsQueue) Enqueue(ctx context.Context, submId uuid.UUID) error {
	body, err := json.Marshal(sqsEvalJob{SubmID: submId.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation job: %w", err)
	}
	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueUrl),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to evaluation queue: %w", err)
	}
	return nil
}

func (q *SqsQueue) Receive(ctx context.Context) ([]QueueMsg, error) {
	output, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueUrl),
		MaxNumberOfMessages: 10,
		WaitTimeSeconds:     5,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	log := logger.FromContext(ctx)
	msgs := make([]QueueMsg, 0, len(output.Messages))
	for _, msg := range output.Messages {
		if msg.Body == nil || msg.ReceiptHandle == nil {
			log.Warn("received malformed sqs message without body or handle")
			q.dropMessage(ctx, msg.ReceiptHandle)
			continue
		}
		var job sqsEvalJob
		if err := json.Unmarshal([]byte(*msg.Body), &job); err != nil {
			log.Warn("failed to unmarshal evaluation job", "error", err)
			q.dropMessage(ctx, msg.ReceiptHandle)
			continue
		}
		submId, err := uuid.Parse(job.SubmID)
		if err != nil {
			log.Warn("evaluation job carries invalid submission id",
				"subm_id", job.SubmID, "error", err)
			q.dropMessage(ctx, msg.ReceiptHandle)
			continue
		}
		msgs = append(msgs, QueueMsg{SubmID: submId, Handle: *msg.ReceiptHandle})
	}
	return msgs, nil
}

// dropMessage deletes a message that can never be processed so it does not
// redeliver forever. Best effort.
func (q *SqsQueue) dropMessage(ctx context.Context, handle *string) {
	if handle == nil {
		return
	}
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueUrl),
		ReceiptHandle: handle,
	})
	if err != nil {
		logger.FromContext(ctx).Warn("failed to delete unprocessable message", "error", err)
	}
}

func (q *SqsQueue) Ack(ctx context.Context, msg QueueMsg) error {
	if msg.Handle == "" {
		return nil
	}
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueUrl),
		ReceiptHandle: aws.String(msg.Handle),
	})
	if err != nil {
		return fmt.Errorf("failed to delete message from evaluation queue: %w", err)
	}
	return nil
}
