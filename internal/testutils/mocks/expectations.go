// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
	levelsmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels/mock"
)

// ExpectRecordCreate accepts one Create call and echoes the stored record.
// When captured is non-nil it receives a copy of the record.
func ExpectRecordCreate(ctx context.Context, mockRepo *levelsmock.MockRepository, captured **levels.Record) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *levels.CreateInput) (*levels.CreateOutput, error) {
			rec := *input.Record
			if captured != nil {
				*captured = &rec
			}
			return &levels.CreateOutput{Record: &rec}, nil
		})
}

// ExpectRecordGet sets up a mock expectation for getting a record by ID
func ExpectRecordGet(
	ctx context.Context, mockRepo *levelsmock.MockRepository,
	levelID string, record *levels.Record, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().Get(ctx, &levels.GetInput{ID: levelID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&levels.GetOutput{Record: record}, nil)
}

// ExpectRecordDelete sets up a mock expectation for deleting a record by ID
func ExpectRecordDelete(ctx context.Context, mockRepo *levelsmock.MockRepository, levelID string, err error) *gomock.Call {
	call := mockRepo.EXPECT().Delete(ctx, &levels.DeleteInput{ID: levelID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&levels.DeleteOutput{Deleted: true}, nil)
}
