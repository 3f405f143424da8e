package service

import (
	"context"
	"encoding/json"
	"time"

	"clinica/internal/cache"
	"clinica/internal/model"
	"clinica/internal/repository"
)

const (
	diagnosesCacheKey = "lookup:diagnoses"
	symptomsCacheKey  = "lookup:symptoms"
	lookupCacheTTL    = 10 * time.Minute
)

// ReferenceService reads the static lookup tables. The tables change
// only via cmd/seed, so reads are cached with a short TTL.
type ReferenceService interface {
	ListDiagnoses(ctx context.Context) ([]model.Diagnosis, error)
	ListSymptoms(ctx context.Context) ([]model.Symptom, error)
}

type referenceService struct {
	repo  repository.LookupRepository
	cache *cache.Client
}

// NewReferenceService builds a ReferenceService with repository and cache.
func NewReferenceService(repo repository.LookupRepository, cache *cache.Client) ReferenceService {
	return &referenceService{repo: repo, cache: cache}
}

func (s *referenceService) ListDiagnoses(ctx context.Context) ([]model.Diagnosis, error) {
	if data, _ := s.cache.Get(ctx, diagnosesCacheKey); data != nil {
		var cached []model.Diagnosis
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	diagnoses, err := s.repo.ListDiagnoses(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(diagnoses); err == nil {
		_ = s.cache.Set(ctx, diagnosesCacheKey, payload, lookupCacheTTL)
	}
	return diagnoses, nil
}

func (s *referenceService) ListSymptoms(ctx context.Context) ([]model.Symptom, error) {
	if data, _ := s.cache.Get(ctx, symptomsCacheKey); data != nil {
		var cached []model.Symptom
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	symptoms, err := s.repo.ListSymptoms(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(symptoms); err == nil {
		_ = s.cache.Set(ctx, symptomsCacheKey, payload, lookupCacheTTL)
	}
	return symptoms, nil
}
