package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aicomply/internal/cache"
	"aicomply/internal/model"
	"aicomply/internal/repository"
)

// SystemService manages the organization's AI system inventory
type SystemService struct {
	systemRepo   repository.SystemRepo
	summaryCache cache.SummaryCache
	broadcaster  Broadcaster
}

// NewSystemService creates a new system service
func NewSystemService(systemRepo repository.SystemRepo, summaryCache cache.SummaryCache) *SystemService {
	return &SystemService{
		systemRepo:   systemRepo,
		summaryCache: summaryCache,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *SystemService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Register adds a new AI system to the org inventory
func (s *SystemService) Register(ctx context.Context, orgID, name, description, vendor string) (*model.AISystem, error) {
	if name == "" {
		return nil, fmt.Errorf("system name is required")
	}

	system := &model.AISystem{
		ID:          "sys_" + uuid.New().String()[:8],
		OrgID:       orgID,
		Name:        name,
		Description: description,
		Vendor:      vendor,
		Status:      model.SystemDraft,
	}

	if err := s.systemRepo.Create(ctx, system); err != nil {
		return nil, fmt.Errorf("failed to create system: %w", err)
	}

	// Dashboard aggregate changed
	s.summaryCache.Invalidate(ctx, orgID)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOrg(orgID, "system_registered", system)
	}

	return system, nil
}

// Get retrieves a system and verifies org ownership
func (s *SystemService) Get(ctx context.Context, orgID, systemID string) (*model.AISystem, error) {
	system, err := s.systemRepo.GetByID(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get system: %w", err)
	}
	if system == nil || system.OrgID != orgID {
		return nil, fmt.Errorf("system not found")
	}
	return system, nil
}

// List returns the org's full inventory
func (s *SystemService) List(ctx context.Context, orgID string) ([]*model.AISystem, error) {
	return s.systemRepo.ListByOrg(ctx, orgID)
}

// Update edits the descriptive fields of a system
func (s *SystemService) Update(ctx context.Context, orgID, systemID, name, description, vendor string) (*model.AISystem, error) {
	system, err := s.Get(ctx, orgID, systemID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		system.Name = name
	}
	system.Description = description
	system.Vendor = vendor

	if err := s.systemRepo.Update(ctx, system); err != nil {
		return nil, fmt.Errorf("failed to update system: %w", err)
	}
	return system, nil
}

// Retire marks a system as no longer in use
func (s *SystemService) Retire(ctx context.Context, orgID, systemID string) (*model.AISystem, error) {
	system, err := s.Get(ctx, orgID, systemID)
	if err != nil {
		return nil, err
	}

	system.Status = model.SystemRetired
	if err := s.systemRepo.Update(ctx, system); err != nil {
		return nil, fmt.Errorf("failed to retire system: %w", err)
	}

	s.summaryCache.Invalidate(ctx, orgID)
	return system, nil
}
