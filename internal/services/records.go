package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"attendance-registry/internal/models"
	"attendance-registry/internal/repository"
)

type RecordService struct {
	records repository.RecordRepository
}

func NewRecordService(records repository.RecordRepository) *RecordService {
	return &RecordService{records: records}
}

// Create сохраняет поля как пришли; пробелы учитываются только при проверке имени.
func (s *RecordService) Create(f models.RecordFields) (*models.Record, error) {
	if strings.TrimSpace(f.AttendantName) == "" {
		return nil, ErrAttendantRequired
	}

	rec := &models.Record{}
	rec.Apply(f)
	if err := s.records.Create(rec); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return rec, nil
}

func (s *RecordService) ListAll() ([]models.Record, error) {
	records, err := s.records.List()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// GetByID: отсутствие записи не ошибка, а found=false.
func (s *RecordService) GetByID(id uint) (*models.Record, bool, error) {
	rec, found, err := s.records.Get(id)
	if err != nil {
		return nil, false, fmt.Errorf("get record %d: %w", id, err)
	}
	return rec, found, nil
}

// Update перезаписывает все поля записи, последний писатель выигрывает.
func (s *RecordService) Update(id uint, f models.RecordFields) (*models.Record, error) {
	rec := &models.Record{ID: id}
	rec.Apply(f)

	if err := s.records.Update(rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("update record %d: %w", id, err)
	}
	return rec, nil
}

// ParseID разбирает id из формы или query-параметра.
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
