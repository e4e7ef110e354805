package subm_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolapp/backend/subm"
)

type stubSqsApi struct {
	messages []types.Message
	sent     []string
	deleted  []string
}

func (s *stubSqsApi) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	s.sent = append(s.sent, aws.ToString(params.MessageBody))
	return &sqs.SendMessageOutput{}, nil
}

func (s *stubSqsApi) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{Messages: s.messages}, nil
}

func (s *stubSqsApi) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	s.deleted = append(s.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSqsQueueRoundTrip(t *testing.T) {
	api := &stubSqsApi{}
	queue := subm.NewSqsQueue(api, "https://sqs.example/eval")
	ctx := context.Background()

	submId, err := uuid.NewV7()
	require.NoError(t, err)

	require.NoError(t, queue.Enqueue(ctx, submId))
	require.Len(t, api.sent, 1)
	assert.Contains(t, api.sent[0], submId.String())

	api.messages = []types.Message{
		{Body: aws.String(api.sent[0]), ReceiptHandle: aws.String("h1")},
	}
	msgs, err := queue.Receive(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, submId, msgs[0].SubmID)

	require.NoError(t, queue.Ack(ctx, msgs[0]))
	assert.Equal(t, []string{"h1"}, api.deleted)
}

func TestSqsQueueDropsUnprocessableMessages(t *testing.T) {
	submId, err := uuid.NewV7()
	require.NoError(t, err)

	api := &stubSqsApi{messages: []types.Message{
		{Body: nil, ReceiptHandle: aws.String("h-nobody")},
		{Body: aws.String("not json"), ReceiptHandle: aws.String("h-garbage")},
		{Body: aws.String(`{"subm_id":"not-a-uuid"}`), ReceiptHandle: aws.String("h-badid")},
		{Body: aws.String(`{"subm_id":"` + submId.String() + `"}`), ReceiptHandle: aws.String("h-good")},
	}}
	queue := subm.NewSqsQueue(api, "https://sqs.example/eval")

	msgs, err := queue.Receive(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, submId, msgs[0].SubmID)

	// unprocessable messages are deleted so they do not redeliver forever;
	// the good one stays until acked
	assert.ElementsMatch(t, []string{"h-nobody", "h-garbage", "h-badid"}, api.deleted)
}
