package jsonfile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

// RecordStore persists free-form records as a single JSON array. Every
// call re-reads the container from disk, so external edits are picked
// up without a restart.
type RecordStore struct {
	path   string
	logger *zap.Logger
}

func NewRecordStore(path string, logger *zap.Logger) *RecordStore {
	return &RecordStore{path: path, logger: logger.Named("RecordStore")}
}

func (s *RecordStore) LoadAll(_ context.Context) ([]map[string]any, error) {
	records := []map[string]any{}
	if err := readSnapshot(s.path, &records); err != nil {
		s.logger.Error("Failed to load records", zap.String("path", s.path), zap.Error(err))
		return nil, err
	}
	return records, nil
}

// Append assigns the record an id, loads the current sequence, appends
// and persists the whole sequence back.
func (s *RecordStore) Append(ctx context.Context, record map[string]any) (map[string]any, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	stored := make(map[string]any, len(record)+1)
	for k, v := range record {
		stored[k] = v
	}
	stored["id"] = uuid.New().String()
	records = append(records, stored)
	if err := s.persistAll(records); err != nil {
		return nil, err
	}
	s.logger.Info("Record appended", zap.String("path", s.path), zap.Int("total", len(records)))
	return stored, nil
}

// Update merges fields into the record with the given id and persists
// the full sequence. The id field itself cannot be overwritten.
func (s *RecordStore) Update(ctx context.Context, id string, fields map[string]any) (map[string]any, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec["id"] != id {
			continue
		}
		for k, v := range fields {
			if k == "id" {
				continue
			}
			rec[k] = v
		}
		if err := s.persistAll(records); err != nil {
			return nil, err
		}
		s.logger.Info("Record updated", zap.String("path", s.path), zap.String("id", id))
		return rec, nil
	}
	s.logger.Warn("Record not found for update", zap.String("path", s.path), zap.String("id", id))
	return nil, domain.ErrPostNotFound
}

func (s *RecordStore) Delete(ctx context.Context, id string) error {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec["id"] != id {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		if err := s.persistAll(records); err != nil {
			return err
		}
		s.logger.Info("Record deleted", zap.String("path", s.path), zap.String("id", id))
		return nil
	}
	s.logger.Warn("Record not found for delete", zap.String("path", s.path), zap.String("id", id))
	return domain.ErrPostNotFound
}

func (s *RecordStore) persistAll(records []map[string]any) error {
	if err := writeSnapshot(s.path, records); err != nil {
		s.logger.Error("Failed to persist records", zap.String("path", s.path), zap.Error(err))
		return err
	}
	return nil
}
