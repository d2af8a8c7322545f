package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cognitrain/ent"
	"github.com/abhisek/cognitrain/ent/gameevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GameEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetGameType(data.GameType).
		SetScore(data.Score).
		SetAccuracy(data.Accuracy).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save game event: %w", err)
	}
	return nil
}

func (r *eventRepo) GameResults(ctx context.Context, gameType string, opts QueryOpts) ([]GameEventData, error) {
	q := r.client.GameEvent.Query().
		Where(gameevent.GameType(gameType)).
		Order(ent.Asc(gameevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(gameevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(gameevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(gameevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(gameevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query game events: %w", err)
	}

	results := make([]GameEventData, 0, len(events))
	for _, e := range events {
		results = append(results, GameEventData{
			SessionID:    e.SessionID,
			GameType:     e.GameType,
			Score:        e.Score,
			Accuracy:     e.Accuracy,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		})
	}
	return results, nil
}

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMemoryNumbers(data.MemoryNumbers).
		SetMemoryWords(data.MemoryWords).
		SetSpeed(data.Speed).
		SetLogic(data.Logic).
		SetWorkingMemory(data.WorkingMemory).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}
