package service

import (
	"context"
	"fmt"
)

// cacheProposalStore backs the schedule generator's pending-proposal cache
// with CacheService/Redis instead of process memory, so a proposal
// generated on one api-gateway instance can be saved from another.
type cacheProposalStore struct {
	cache *CacheService
}

// NewCacheProposalStore builds a Redis-backed proposal store suitable for
// passing into NewScheduleGeneratorService when running more than one
// api-gateway instance behind a load balancer.
func NewCacheProposalStore(cache *CacheService) *cacheProposalStore {
	return &cacheProposalStore{cache: cache}
}

func proposalCacheKey(id string) string {
	return fmt.Sprintf("schedule:proposal:%s", id)
}

func (s *cacheProposalStore) Save(ctx context.Context, proposal scheduleProposal) error {
	return s.cache.Set(ctx, proposalCacheKey(proposal.ProposalID), proposal, 0)
}

func (s *cacheProposalStore) Get(ctx context.Context, id string) (scheduleProposal, bool, error) {
	var proposal scheduleProposal
	hit, err := s.cache.Get(ctx, proposalCacheKey(id), &proposal)
	if err != nil {
		return scheduleProposal{}, false, err
	}
	return proposal, hit, nil
}

func (s *cacheProposalStore) Delete(ctx context.Context, id string) error {
	return s.cache.Invalidate(ctx, proposalCacheKey(id))
}
